package user

import (
	"context"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-console/internal/domain/port/usecase"
)

// Profile summarizes the logged-in user
func (u *UserUseCase) Profile(ctx context.Context) (*usecase.Profile, error) {
	user, err := u.storedCurrent(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.Profile{
		PhoneNumber:       user.PhoneNumber,
		Email:             user.Email,
		BankName:          user.BankName,
		BankAccountNumber: user.BankAccount,
		IFSC:              user.IFSC,
		TotalTransactions: user.PaymentCount(),
		TotalSpent:        user.TotalSpent(),
	}, nil
}

// History returns the logged-in user's payments in chronological order
func (u *UserUseCase) History(ctx context.Context) ([]*entity.Payment, error) {
	user, err := u.storedCurrent(ctx)
	if err != nil {
		return nil, err
	}
	return user.Payments(), nil
}

// storedCurrent reads the session user back from the repository so views
// reflect the recorded history
func (u *UserUseCase) storedCurrent(ctx context.Context) (*entity.User, error) {
	current, err := u.Current()
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, current.ID)
	if err != nil {
		u.logger.Error("Failed to load session user", map[string]any{
			"user_id": current.ID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return user, nil
}
