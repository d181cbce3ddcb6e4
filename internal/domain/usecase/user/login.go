package user

import (
	"context"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
)

// Login scans users registered with phoneNumber in registration order and starts a
// session for the first one whose password matches
func (u *UserUseCase) Login(ctx context.Context, phoneNumber, password string) (*entity.User, error) {
	candidates, err := u.userRepo.FindByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if u.hasher.Compare(candidate.PasswordHash(), password) {
			u.session.Start(candidate)
			u.logger.Info("User logged in", map[string]any{
				"user_id": candidate.ID,
				"phone":   candidate.PhoneNumber,
			})
			return candidate, nil
		}
	}

	u.logger.Warn("Login failed", map[string]any{
		"phone":      phoneNumber,
		"candidates": len(candidates),
	})
	return nil, errs.ErrInvalidCredentials
}

// Logout clears the active session
func (u *UserUseCase) Logout(ctx context.Context) {
	if user, ok := u.session.User(); ok {
		u.logger.Info("User logged out", map[string]any{
			"user_id": user.ID,
		})
	}
	u.session.End()
}

// Current returns the logged-in user
func (u *UserUseCase) Current() (*entity.User, error) {
	user, ok := u.session.User()
	if !ok {
		return nil, errs.ErrNotAuthenticated
	}
	return user, nil
}
