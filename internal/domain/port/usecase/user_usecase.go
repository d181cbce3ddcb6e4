package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

// Profile is the summary shown on the profile screen
type Profile struct {
	PhoneNumber       string
	Email             string
	BankName          string
	BankAccountNumber string
	IFSC              string
	TotalTransactions int
	TotalSpent        decimal.Decimal // Successful payments only
}

// UserUseCase defines registration, session and account views
type UserUseCase interface {
	// Register creates a new user; the password is stored as a salted digest
	Register(ctx context.Context, details entity.UserDetails, password string) (*entity.User, error)

	// Login finds the first user, in registration order, matching the phone and password
	// and makes it the active session user
	Login(ctx context.Context, phoneNumber, password string) (*entity.User, error)

	// Logout clears the active session
	Logout(ctx context.Context)

	// Current returns the logged-in user or ErrNotAuthenticated
	Current() (*entity.User, error)

	// Profile summarizes the logged-in user
	Profile(ctx context.Context) (*Profile, error)

	// History returns the logged-in user's payments in chronological order
	History(ctx context.Context) ([]*entity.Payment, error)
}
