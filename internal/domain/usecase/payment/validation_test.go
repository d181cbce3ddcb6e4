package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
)

func TestValidateCard(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{"Sixteen digits", "4111111111111111", true},
		{"All zeros", "0000000000000000", true},
		{"Empty", "", false},
		{"Fifteen digits", "411111111111111", false},
		{"Seventeen digits", "41111111111111111", false},
		{"Letter inside", "41111111111a1111", false},
		{"Spaces", "4111 1111 1111 1111", false},
		{"Dashes", "4111-1111-1111-11", false},
		{"Non-ASCII digits", "٤١١١١١١١١١١١١١١١", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidateCard(tc.number))
		})
	}
}

func TestValidateCardAllDigitStrings(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		assert.True(t, ValidateCard(strings.Repeat(string(d), CardNumberLength)))
		assert.False(t, ValidateCard(strings.Repeat(string(d), CardNumberLength-1)))
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		address string
		valid   bool
	}{
		{"user@example.com", true},
		{".@", true},
		{"a.b@c", true},
		{"user@example", false},
		{"user.example.com", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.address, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidateEmail(tc.address))
		})
	}
}

func TestValidateHandle(t *testing.T) {
	assert.True(t, ValidateHandle("user@bank"))
	assert.True(t, ValidateHandle("@"))
	assert.False(t, ValidateHandle("nouser"))
	assert.False(t, ValidateHandle(""))
}

func TestInstrumentValidator(t *testing.T) {
	validator := NewInstrumentValidator()

	tests := []struct {
		name        string
		kind        entity.PaymentKind
		value       string
		expectedErr error
	}{
		{"Valid card", entity.KindCard, "4111111111111111", nil},
		{"Invalid card", entity.KindCard, "4111", errs.ErrInvalidInstrument},
		{"Valid wallet", entity.KindWallet, "me@mail.com", nil},
		{"Invalid wallet", entity.KindWallet, "me-at-mail", errs.ErrInvalidInstrument},
		{"Valid transfer", entity.KindTransfer, "me@bank", nil},
		{"Invalid transfer", entity.KindTransfer, "nouser", errs.ErrInvalidInstrument},
		{"Unknown kind", entity.PaymentKind("cash"), "x", errs.ErrInvalidPaymentKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateInstrument(tc.kind, tc.value)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
