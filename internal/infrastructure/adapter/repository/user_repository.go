package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
)

// UserRepository implements the UserRepository interface in process memory.
// Users live until the process exits; registration order is preserved.
type UserRepository struct {
	mu     sync.RWMutex
	users  []*entity.User          // registration order
	byID   map[string]*entity.User // index on ID
	logger coreport.Logger
}

// NewUserRepository creates a new, empty UserRepository
func NewUserRepository(logger coreport.Logger) *UserRepository {
	return &UserRepository{
		byID:   make(map[string]*entity.User),
		logger: logger,
	}
}

// Create stores a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: nil user", errs.ErrInvalidRegistration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[user.ID]; exists {
		r.logger.Warn("Duplicate user ID", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrDuplicateUser
	}

	r.users = append(r.users, user)
	r.byID[user.ID] = user

	r.logger.Debug("User stored", map[string]any{
		"user_id": user.ID,
		"phone":   user.PhoneNumber,
		"count":   len(r.users),
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}

// FindByPhone scans users in registration order and returns every exact phone match
func (r *UserRepository) FindByPhone(ctx context.Context, phoneNumber string) ([]*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entity.User, 0, 1)
	for _, user := range r.users {
		if user.PhoneNumber == phoneNumber {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

// AppendPayment adds a payment to the end of a user's history.
// The write lock serializes appends so history order matches call order.
func (r *UserRepository) AppendPayment(ctx context.Context, userID string, payment *entity.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		r.logger.Warn("User not found while appending payment", map[string]any{
			"user_id":    userID,
			"payment_id": payment.ID(),
		})
		return errs.ErrUserNotFound
	}

	user.AppendPayment(payment)

	r.logger.Debug("Payment appended to history", map[string]any{
		"user_id":    userID,
		"payment_id": payment.ID(),
		"status":     string(payment.Status()),
		"history":    user.PaymentCount(),
	})
	return nil
}

// Count returns the number of registered users
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
