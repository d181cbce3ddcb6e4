package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

// UserRepository defines the methods needed to store users and their payment history
type UserRepository interface {
	// Create stores a new user
	//
	// Possible errors:
	// - ErrInvalidRegistration: If user is nil
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// FindByPhone returns every user registered with the phone number, in registration order.
	// An empty slice is returned when there is no match.
	FindByPhone(ctx context.Context, phoneNumber string) ([]*entity.User, error)

	// AppendPayment adds a payment to the end of a user's history
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	AppendPayment(ctx context.Context, userID string, payment *entity.Payment) error
}
