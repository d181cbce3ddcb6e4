package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptDateLayout is the layout used for dates on receipts, listings and the payment log
const ReceiptDateLayout = "2006-01-02 15:04:05"

// ReceiptGenerator is implemented by anything that can summarize itself as a receipt
type ReceiptGenerator interface {
	Receipt() Receipt
}

// Receipt is the kind-specific summary produced after a successful payment
type Receipt struct {
	Title           string
	PaymentID       string
	Date            time.Time
	Amount          decimal.Decimal
	InstrumentLabel string
	InstrumentValue string
	Status          PaymentStatus
}

func receiptTitle(kind PaymentKind) string {
	switch kind {
	case KindCard:
		return "CARD RECEIPT"
	case KindWallet:
		return "WALLET RECEIPT"
	case KindTransfer:
		return "TRANSFER RECEIPT"
	default:
		return "RECEIPT"
	}
}

// Fields returns the receipt body as ordered label/value pairs
func (r Receipt) Fields(currencySymbol string) [][2]string {
	return [][2]string{
		{"Payment ID", r.PaymentID},
		{"Date", r.Date.Format(ReceiptDateLayout)},
		{"Amount", currencySymbol + FormatAmount(r.Amount)},
		{r.InstrumentLabel, r.InstrumentValue},
		{"Status", string(r.Status)},
	}
}

// Format renders the receipt as a framed text block
func (r Receipt) Format(currencySymbol string) string {
	header := fmt.Sprintf("===== %s =====", r.Title)

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	for _, field := range r.Fields(currencySymbol) {
		fmt.Fprintf(&sb, "%s: %s\n", field[0], field[1])
	}
	sb.WriteString(strings.Repeat("=", len(header)))
	sb.WriteByte('\n')
	return sb.String()
}
