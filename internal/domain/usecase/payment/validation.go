package payment

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
)

// CardNumberLength is the exact number of digits a card number must have
const CardNumberLength = 16

// ValidateCard reports whether number is exactly 16 ASCII decimal digits.
// No Luhn or issuer check is performed.
func ValidateCard(number string) bool {
	if len(number) != CardNumberLength {
		return false
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateEmail reports whether address contains both '@' and '.', in any position
func ValidateEmail(address string) bool {
	return strings.Contains(address, "@") && strings.Contains(address, ".")
}

// ValidateHandle reports whether handle contains '@' (user@bank)
func ValidateHandle(handle string) bool {
	return strings.Contains(handle, "@")
}

// InstrumentValidator checks instrument fields before a payment is created
type InstrumentValidator struct{}

// NewInstrumentValidator creates a new InstrumentValidator
func NewInstrumentValidator() *InstrumentValidator {
	return &InstrumentValidator{}
}

// ValidateInstrument applies the rule of the given kind to value
func (v *InstrumentValidator) ValidateInstrument(kind entity.PaymentKind, value string) error {
	var valid bool
	switch kind {
	case entity.KindCard:
		valid = ValidateCard(value)
	case entity.KindWallet:
		valid = ValidateEmail(value)
	case entity.KindTransfer:
		valid = ValidateHandle(value)
	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidPaymentKind, kind)
	}

	if !valid {
		return fmt.Errorf("%w: invalid %s", errs.ErrInvalidInstrument, strings.ToLower(kind.FieldLabel()))
	}
	return nil
}
