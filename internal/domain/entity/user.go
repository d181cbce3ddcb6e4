package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/payment-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-console/internal/domain/port/core"
)

// UserDetails holds the profile fields collected at registration
type UserDetails struct {
	PhoneNumber       string
	Email             string
	BankName          string
	BankAccountNumber string
	IFSC              string
}

// User represents a registered account and its payment history
type User struct {
	ID           string     // Unique identifier, independent of the phone number
	PhoneNumber  string     // Login identifier
	Email        string     // Contact email
	BankName     string     // Linked bank
	BankAccount  string     // Linked bank account number
	IFSC         string     // Bank routing code
	CreatedAt    time.Time  // When the user registered
	passwordHash []byte     // One-way digest of the password (private)
	payments     []*Payment // Chronological history (private, append only)
}

// NewUser creates a user with an empty payment history
func NewUser(id string, details UserDetails, passwordHash []byte, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(details.PhoneNumber) == "" {
		return nil, fmt.Errorf("%w: phone number is required", errs.ErrInvalidRegistration)
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("%w: password is required", errs.ErrInvalidRegistration)
	}

	return &User{
		ID:           id,
		PhoneNumber:  details.PhoneNumber,
		Email:        details.Email,
		BankName:     details.BankName,
		BankAccount:  details.BankAccountNumber,
		IFSC:         details.IFSC,
		CreatedAt:    timeProvider.Now(),
		passwordHash: passwordHash,
	}, nil
}

// PasswordHash returns the stored password digest
func (u *User) PasswordHash() []byte {
	return u.passwordHash
}

// AppendPayment adds a payment to the end of the user's history
func (u *User) AppendPayment(payment *Payment) {
	u.payments = append(u.payments, payment)
}

// Payments returns a copy of the history in insertion order
func (u *User) Payments() []*Payment {
	history := make([]*Payment, len(u.payments))
	copy(history, u.payments)
	return history
}

// PaymentCount returns the number of payments in the history
func (u *User) PaymentCount() int {
	return len(u.payments)
}

// TotalSpent sums the amounts of successful payments.
// Declined (Failed) payments moved no money and are excluded.
func (u *User) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, p := range u.payments {
		if p.Status() == StatusSuccess {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// LastReceipt returns the receipt of the most recent successful payment
func (u *User) LastReceipt() (Receipt, bool) {
	for i := len(u.payments) - 1; i >= 0; i-- {
		if u.payments[i].Status() == StatusSuccess {
			return u.payments[i].Receipt(), true
		}
	}
	return Receipt{}, false
}
