package error

import (
	"errors"
	"fmt"
)

// Error codes reported by the console shell and attached to structured logs
const (
	// 4xxx - Caller errors, recoverable by re-prompting
	CodeInvalidAmount           = 4002
	CodeLimitExceeded           = 4003
	CodeInvalidInstrument       = 4004
	CodeInvalidPaymentKind      = 4005
	CodeInvalidRegistration     = 4006
	CodeDuplicateUser           = 4009
	CodeInvalidCredentials      = 4010
	CodeNotAuthenticated        = 4011
	CodeNothingToExport         = 4041
	CodeInvalidStatusTransition = 4090

	// 5xxx - Internal errors
	CodeInternal = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when the amount is missing, malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrLimitExceeded is returned when the amount is above the per-transaction limit
	ErrLimitExceeded = errors.New("amount exceeds transaction limit")

	// ErrInvalidInstrument is returned when the instrument fields fail syntactic validation
	ErrInvalidInstrument = errors.New("invalid payment instrument")

	// ErrInvalidPaymentKind is returned for a payment kind outside card, wallet and transfer
	ErrInvalidPaymentKind = errors.New("invalid payment kind")

	// ErrInvalidStatusTransition is returned when a payment that already left Pending is transitioned again
	ErrInvalidStatusTransition = errors.New("payment status already final")

	// ErrInvalidRegistration is returned when required registration fields are empty
	ErrInvalidRegistration = errors.New("invalid registration data")

	// ErrDuplicateUser is returned when phone numbers must be unique and the phone is taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned when no registered user matches the phone and password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated is returned when an operation needs a logged-in user and there is none
	ErrNotAuthenticated = errors.New("no user logged in")

	// ErrNothingToExport is returned when there is no receipt or history to export
	ErrNothingToExport = errors.New("nothing to export")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("internal error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrLimitExceeded):
		return CodeLimitExceeded
	case errors.Is(err, ErrInvalidInstrument):
		return CodeInvalidInstrument
	case errors.Is(err, ErrInvalidPaymentKind):
		return CodeInvalidPaymentKind
	case errors.Is(err, ErrInvalidRegistration):
		return CodeInvalidRegistration
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrNotAuthenticated):
		return CodeNotAuthenticated
	case errors.Is(err, ErrInvalidStatusTransition):
		return CodeInvalidStatusTransition
	case errors.Is(err, ErrNothingToExport):
		return CodeNothingToExport
	default:
		return CodeInternal
	}
}

// AttemptError describes why a payment attempt was rejected before a record was created
type AttemptError struct {
	Kind   string
	Amount string
	Err    error
}

// Error implements the error interface for AttemptError
func (e *AttemptError) Error() string {
	if e.Amount == "" {
		return fmt.Sprintf("%s payment rejected: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s payment of %s rejected: %v", e.Kind, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *AttemptError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AttemptError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "attempt_error",
		"kind":       e.Kind,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewAttemptError creates a detailed attempt error
func NewAttemptError(kind, amount string, err error) error {
	return &AttemptError{
		Kind:   kind,
		Amount: amount,
		Err:    err,
	}
}

// StatusTransitionError reports an attempt to move a payment out of a terminal status
type StatusTransitionError struct {
	PaymentID string
	From      string
	To        string
}

// Error implements the error interface
func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("payment %s cannot move from %s to %s", e.PaymentID, e.From, e.To)
}

// Is checks if the target error is an ErrInvalidStatusTransition
func (e *StatusTransitionError) Is(target error) bool {
	return target == ErrInvalidStatusTransition
}

// NewStatusTransitionError creates a new status transition error
func NewStatusTransitionError(paymentID, from, to string) error {
	return &StatusTransitionError{
		PaymentID: paymentID,
		From:      from,
		To:        to,
	}
}

// IsLimitExceededError checks if the error is a transaction limit violation
func IsLimitExceededError(err error) bool {
	return errors.Is(err, ErrLimitExceeded)
}

// IsInvalidAmountError checks if the error is an invalid amount error
func IsInvalidAmountError(err error) bool {
	return errors.Is(err, ErrInvalidAmount)
}

// IsInvalidInstrumentError checks if the error is an instrument validation failure
func IsInvalidInstrumentError(err error) bool {
	return errors.Is(err, ErrInvalidInstrument)
}

// IsAttemptRejected checks if the error rejected an attempt before any record was created
func IsAttemptRejected(err error) bool {
	var attemptErr *AttemptError
	return errors.As(err, &attemptErr)
}
