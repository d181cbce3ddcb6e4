package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
)

// PaymentKind identifies one of the closed set of payment variants
type PaymentKind string

// Payment kinds
const (
	KindCard     PaymentKind = "card"
	KindWallet   PaymentKind = "wallet"
	KindTransfer PaymentKind = "transfer"
)

// PaymentKinds lists every supported kind in menu order
var PaymentKinds = []PaymentKind{KindCard, KindWallet, KindTransfer}

// ParsePaymentKind validates a kind name
func ParsePaymentKind(kind string) (PaymentKind, error) {
	switch k := PaymentKind(strings.ToLower(strings.TrimSpace(kind))); k {
	case KindCard, KindWallet, KindTransfer:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidPaymentKind, kind)
	}
}

// TypeName is the variant name written to the payment log and history listings
func (k PaymentKind) TypeName() string {
	switch k {
	case KindCard:
		return "CardPayment"
	case KindWallet:
		return "WalletPayment"
	case KindTransfer:
		return "TransferPayment"
	default:
		return "UnknownPayment"
	}
}

// FieldLabel is the prompt/receipt label of the kind's single instrument field
func (k PaymentKind) FieldLabel() string {
	switch k {
	case KindCard:
		return "Card Number"
	case KindWallet:
		return "Wallet Email"
	case KindTransfer:
		return "Transfer Handle"
	default:
		return "Instrument"
	}
}

// Instrument is the kind-specific data attached to a payment
type Instrument interface {
	// Kind returns the payment variant this instrument belongs to
	Kind() PaymentKind
	// Display returns the value safe to show on receipts and listings
	Display() string
}

// CardInstrument keeps only the last four digits of the card number
type CardInstrument struct {
	Last4 string
}

// NewCardInstrument builds a card instrument from a full card number
func NewCardInstrument(number string) CardInstrument {
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}
	return CardInstrument{Last4: last4}
}

// Kind implements Instrument
func (c CardInstrument) Kind() PaymentKind { return KindCard }

// Display implements Instrument
func (c CardInstrument) Display() string {
	return "**** **** **** " + c.Last4
}

// WalletInstrument identifies a wallet account by email
type WalletInstrument struct {
	Email string
}

// Kind implements Instrument
func (w WalletInstrument) Kind() PaymentKind { return KindWallet }

// Display implements Instrument
func (w WalletInstrument) Display() string { return w.Email }

// TransferInstrument identifies a transfer destination by a user@bank handle
type TransferInstrument struct {
	Handle string
}

// Kind implements Instrument
func (t TransferInstrument) Kind() PaymentKind { return KindTransfer }

// Display implements Instrument
func (t TransferInstrument) Display() string { return t.Handle }

// NewInstrument builds the instrument for kind from its raw field value.
// It performs no syntactic validation.
func NewInstrument(kind PaymentKind, value string) (Instrument, error) {
	switch kind {
	case KindCard:
		return NewCardInstrument(value), nil
	case KindWallet:
		return WalletInstrument{Email: value}, nil
	case KindTransfer:
		return TransferInstrument{Handle: value}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPaymentKind, kind)
	}
}
