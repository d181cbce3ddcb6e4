package entity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// DefaultTransactionLimit is the system-wide maximum amount of a single payment
var DefaultTransactionLimit = decimal.NewFromInt(5000)

var amountPattern = regexp.MustCompile(`^-?\d+(\.\d*)?$`)

// ParseAmount validates the textual form of an amount and converts it to a decimal.
// Accepted forms are plain digits with an optional sign and at most two decimal places
// ("10", "10.5", "10.50", "10."). Exponents, separators and currency symbols are rejected.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if !amountPattern.MatchString(amount) {
		return decimal.Zero, fmt.Errorf("%w: invalid number format %q", errs.ErrInvalidAmount, amount)
	}

	if dot := strings.IndexByte(amount, '.'); dot >= 0 && len(amount)-dot-1 > MaxDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	value, err := decimal.NewFromString(strings.TrimSuffix(amount, "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ParsePositiveAmount parses an amount and rejects zero and negative values
func ParsePositiveAmount(amount string) (decimal.Decimal, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	return value, nil
}

// FormatAmount renders an amount with exactly two decimal places.
// Example: 10 becomes "10.00", 10.5 becomes "10.50"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
