package user

import (
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-console/internal/domain/port/persistence"
)

// UserUseCase handles registration, login and account views
type UserUseCase struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	session      *Session

	// When set, Register rejects a phone number that is already registered
	uniquePhoneNumbers bool
}

// NewUserUseCase creates a new UserUseCase bound to session
func NewUserUseCase(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	session *Session,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		session:      session,
	}
}

// WithUniquePhoneNumbers enables or disables the phone number uniqueness check
func (u *UserUseCase) WithUniquePhoneNumbers(enabled bool) *UserUseCase {
	u.uniquePhoneNumbers = enabled
	return u
}
