package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
)

// PaymentStatus defines possible status values for a payment
type PaymentStatus string

// PaymentStatus constants
const (
	StatusPending PaymentStatus = "Pending"
	StatusSuccess PaymentStatus = "Success"
	StatusFailed  PaymentStatus = "Failed"
)

// IsFinal reports whether no further transition is allowed
func (s PaymentStatus) IsFinal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Payment represents one attempted transaction owned by a single user
type Payment struct {
	id          string          // Unique identifier, immutable once created
	Amount      decimal.Decimal // Positive amount
	CreatedAt   time.Time       // When the payment was created
	ProcessedAt *time.Time      // When the payment reached a final status (nullable)
	status      PaymentStatus   // Pending until exactly one transition
	Instrument  Instrument      // Kind-specific instrument data
}

// NewPayment creates a pending payment
func NewPayment(
	id string,
	amount decimal.Decimal,
	instrument Instrument,
	timeProvider coreport.TimeProvider,
) *Payment {
	return &Payment{
		id:         id,
		Amount:     amount,
		CreatedAt:  timeProvider.Now(),
		status:     StatusPending,
		Instrument: instrument,
	}
}

// ID returns the payment identifier
func (p *Payment) ID() string {
	return p.id
}

// Status returns the current status
func (p *Payment) Status() PaymentStatus {
	return p.status
}

// Kind returns the payment variant
func (p *Payment) Kind() PaymentKind {
	return p.Instrument.Kind()
}

// MarkAsSucceeded moves a pending payment to Success
func (p *Payment) MarkAsSucceeded(timeProvider coreport.TimeProvider) error {
	return p.transition(StatusSuccess, timeProvider)
}

// MarkAsFailed moves a pending payment to Failed
func (p *Payment) MarkAsFailed(timeProvider coreport.TimeProvider) error {
	return p.transition(StatusFailed, timeProvider)
}

func (p *Payment) transition(to PaymentStatus, timeProvider coreport.TimeProvider) error {
	if p.status != StatusPending {
		return errs.NewStatusTransitionError(p.id, string(p.status), string(to))
	}

	now := timeProvider.Now()
	p.ProcessedAt = &now
	p.status = to
	return nil
}

// Receipt implements ReceiptGenerator
func (p *Payment) Receipt() Receipt {
	return Receipt{
		Title:           receiptTitle(p.Kind()),
		PaymentID:       p.id,
		Date:            p.CreatedAt,
		Amount:          p.Amount,
		InstrumentLabel: p.Kind().FieldLabel(),
		InstrumentValue: p.Instrument.Display(),
		Status:          p.status,
	}
}
