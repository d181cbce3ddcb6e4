package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrLimitExceeded.Error() != "amount exceeds transaction limit" {
		t.Errorf("ErrLimitExceeded has unexpected message: %s", ErrLimitExceeded.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"LimitExceeded", ErrLimitExceeded, 4003},
		{"InvalidInstrument", ErrInvalidInstrument, 4004},
		{"InvalidPaymentKind", ErrInvalidPaymentKind, 4005},
		{"InvalidRegistration", ErrInvalidRegistration, 4006},
		{"DuplicateUser", ErrDuplicateUser, 4009},
		{"InvalidCredentials", ErrInvalidCredentials, 4010},
		{"NotAuthenticated", ErrNotAuthenticated, 4011},
		{"InvalidStatusTransition", ErrInvalidStatusTransition, 4090},
		{"NothingToExport", ErrNothingToExport, 4041},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrLimitExceeded), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestAttemptError(t *testing.T) {
	err := NewAttemptError("wallet", "6000.00", ErrLimitExceeded)

	expectedErrMsg := "wallet payment of 6000.00 rejected: amount exceeds transaction limit"
	if err.Error() != expectedErrMsg {
		t.Errorf("AttemptError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("errors.Is(err, ErrLimitExceeded) = false, want true")
	}
	if !IsLimitExceededError(err) {
		t.Errorf("IsLimitExceededError(err) = false, want true")
	}
	if !IsAttemptRejected(err) {
		t.Errorf("IsAttemptRejected(err) = false, want true")
	}

	var attemptErr *AttemptError
	if !errors.As(err, &attemptErr) {
		t.Fatal("errors.As failed for AttemptError")
	}

	fields := attemptErr.LogFields()
	if fields["kind"] != "wallet" {
		t.Errorf("LogFields kind = %v, want wallet", fields["kind"])
	}
	if fields["error_code"] != CodeLimitExceeded {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeLimitExceeded)
	}
}

func TestStatusTransitionError(t *testing.T) {
	err := NewStatusTransitionError("pay-1", "Success", "Failed")

	expectedErrMsg := "payment pay-1 cannot move from Success to Failed"
	if err.Error() != expectedErrMsg {
		t.Errorf("StatusTransitionError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}
	if !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("errors.Is(err, ErrInvalidStatusTransition) = false, want true")
	}
	if IsAttemptRejected(err) {
		t.Errorf("IsAttemptRejected(err) = true, want false")
	}
}

func TestHelperPredicates(t *testing.T) {
	if !IsInvalidAmountError(fmt.Errorf("%w: empty value", ErrInvalidAmount)) {
		t.Error("IsInvalidAmountError should match wrapped ErrInvalidAmount")
	}
	if !IsInvalidInstrumentError(NewAttemptError("card", "10.00", ErrInvalidInstrument)) {
		t.Error("IsInvalidInstrumentError should match attempt error")
	}
	if IsLimitExceededError(ErrInvalidAmount) {
		t.Error("IsLimitExceededError should not match ErrInvalidAmount")
	}
}
