package user

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
)

func TestProfileAndHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires a session", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.useCase.Profile(ctx)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
		_, err = f.useCase.History(ctx)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("Summarizes the active user", func(t *testing.T) {
		f := newUserFixture(t)
		user, err := entity.NewUser("user-1", entity.UserDetails{
			PhoneNumber:       "9999999999",
			Email:             "user@example.com",
			BankName:          "State Bank",
			BankAccountNumber: "123456789",
			IFSC:              "SBIN0001234",
		}, []byte("digest"), f.clock)
		require.NoError(t, err)

		paid := entity.NewPayment("pay-1", decimal.NewFromInt(2000), entity.NewCardInstrument("4111111111111111"), f.clock)
		require.NoError(t, paid.MarkAsSucceeded(f.clock))
		declined := entity.NewPayment("pay-2", decimal.NewFromInt(300), entity.WalletInstrument{Email: "a@b.c"}, f.clock)
		require.NoError(t, declined.MarkAsFailed(f.clock))
		user.AppendPayment(paid)
		user.AppendPayment(declined)
		f.session.Start(user)
		f.repo.EXPECT().GetByID(mock.Anything, "user-1").Return(user, nil).Twice()

		profile, err := f.useCase.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "9999999999", profile.PhoneNumber)
		assert.Equal(t, "user@example.com", profile.Email)
		assert.Equal(t, "State Bank", profile.BankName)
		assert.Equal(t, "123456789", profile.BankAccountNumber)
		assert.Equal(t, "SBIN0001234", profile.IFSC)
		assert.Equal(t, 2, profile.TotalTransactions)
		assert.True(t, profile.TotalSpent.Equal(decimal.NewFromInt(2000)))

		history, err := f.useCase.History(ctx)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "pay-1", history[0].ID())
		assert.Equal(t, "pay-2", history[1].ID())
	})
	t.Run("Session user missing from the store", func(t *testing.T) {
		f := newUserFixture(t)
		user, err := entity.NewUser("user-1", entity.UserDetails{PhoneNumber: "9999999999"}, []byte("digest"), f.clock)
		require.NoError(t, err)
		f.session.Start(user)
		f.repo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errs.ErrUserNotFound).Once()
		f.logger.EXPECT().Error("Failed to load session user", mock.Anything).Once()

		_, err = f.useCase.Profile(ctx)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
