package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

// AttemptRequest carries the raw input of one payment attempt
type AttemptRequest struct {
	Kind       entity.PaymentKind
	Amount     decimal.Decimal
	Instrument string // Card number, wallet email or transfer handle, unvalidated
	Confirmed  bool
}

// AttemptResult is returned for every attempt that created a payment record
type AttemptResult struct {
	Payment *entity.Payment
	Receipt *entity.Receipt // Set only when the payment succeeded
	LogErr  error           // Non-nil when the payment log could not be written
}

// PaymentUseCase drives payment attempts for a user
type PaymentUseCase interface {
	// Limit returns the maximum amount of a single payment
	Limit() decimal.Decimal

	// CheckAmount applies the amount rules without creating anything
	CheckAmount(kind entity.PaymentKind, amount decimal.Decimal) error

	// CheckInstrument applies the kind's instrument rule without creating anything
	CheckInstrument(kind entity.PaymentKind, value string) error

	// Attempt runs one attempt end to end. Rejections (amount or instrument) return an
	// AttemptError and leave history and log untouched. Declined attempts are recorded as Failed.
	Attempt(ctx context.Context, user *entity.User, req AttemptRequest) (*AttemptResult, error)
}
