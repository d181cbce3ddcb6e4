package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
)

func TestParsePaymentKind(t *testing.T) {
	for _, input := range []string{"card", "Wallet", " TRANSFER "} {
		t.Run(input, func(t *testing.T) {
			kind, err := ParsePaymentKind(input)
			require.NoError(t, err)
			assert.Contains(t, PaymentKinds, kind)
		})
	}

	_, err := ParsePaymentKind("paypal")
	assert.ErrorIs(t, err, errs.ErrInvalidPaymentKind)
}

func TestPaymentKindNames(t *testing.T) {
	assert.Equal(t, "CardPayment", KindCard.TypeName())
	assert.Equal(t, "WalletPayment", KindWallet.TypeName())
	assert.Equal(t, "TransferPayment", KindTransfer.TypeName())
	assert.Equal(t, "UnknownPayment", PaymentKind("cash").TypeName())
}

func TestNewInstrument(t *testing.T) {
	card, err := NewInstrument(KindCard, "4111111111115678")
	require.NoError(t, err)
	assert.Equal(t, KindCard, card.Kind())
	assert.Equal(t, "**** **** **** 5678", card.Display())
	assert.Equal(t, CardInstrument{Last4: "5678"}, card)

	wallet, err := NewInstrument(KindWallet, "me@mail.com")
	require.NoError(t, err)
	assert.Equal(t, KindWallet, wallet.Kind())
	assert.Equal(t, "me@mail.com", wallet.Display())

	transfer, err := NewInstrument(KindTransfer, "me@bank")
	require.NoError(t, err)
	assert.Equal(t, KindTransfer, transfer.Kind())
	assert.Equal(t, "me@bank", transfer.Display())

	_, err = NewInstrument(PaymentKind("cash"), "x")
	assert.ErrorIs(t, err, errs.ErrInvalidPaymentKind)
}

func TestNewCardInstrumentShortNumber(t *testing.T) {
	assert.Equal(t, "12", NewCardInstrument("12").Last4)
	assert.Equal(t, "", NewCardInstrument("").Last4)
}
