package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
)

// Register creates a new user with an empty payment history
func (u *UserUseCase) Register(ctx context.Context, details entity.UserDetails, password string) (*entity.User, error) {
	details.PhoneNumber = strings.TrimSpace(details.PhoneNumber)
	if details.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: phone number is required", errs.ErrInvalidRegistration)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", errs.ErrInvalidRegistration)
	}

	if u.uniquePhoneNumbers {
		existing, err := u.userRepo.FindByPhone(ctx, details.PhoneNumber)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, errs.ErrDuplicateUser
		}
	}

	digest, err := u.hasher.Hash(password)
	if errors.Is(err, errs.ErrInvalidRegistration) {
		return nil, err
	}
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternal, err.Error())
	}

	user, err := entity.NewUser(u.idGenerator.NewID(), details, digest, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"phone": user.PhoneNumber,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"phone":   user.PhoneNumber,
	})

	return user, nil
}
