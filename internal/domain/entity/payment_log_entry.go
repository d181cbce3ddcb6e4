package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentLogEntry is one line of the payment log
type PaymentLogEntry struct {
	Timestamp   time.Time
	PhoneNumber string
	Kind        PaymentKind
	Amount      decimal.Decimal
	Status      PaymentStatus
	PaymentID   string
}

// NewPaymentLogEntry builds the log entry for a payment owned by user
func NewPaymentLogEntry(user *User, payment *Payment, loggedAt time.Time) PaymentLogEntry {
	return PaymentLogEntry{
		Timestamp:   loggedAt,
		PhoneNumber: user.PhoneNumber,
		Kind:        payment.Kind(),
		Amount:      payment.Amount,
		Status:      payment.Status(),
		PaymentID:   payment.ID(),
	}
}

// String renders the pipe-delimited line, without a trailing newline
func (e PaymentLogEntry) String() string {
	return fmt.Sprintf("%s | %s | %s | Amount: %s | Status: %s | ID: %s",
		e.Timestamp.Format(ReceiptDateLayout),
		e.PhoneNumber,
		e.Kind.TypeName(),
		FormatAmount(e.Amount),
		e.Status,
		e.PaymentID,
	)
}
