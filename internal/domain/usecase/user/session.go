package user

import (
	"sync"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

// Session holds at most one authenticated user
type Session struct {
	mu   sync.RWMutex
	user *entity.User
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{}
}

// Start makes user the active user, replacing any previous one
func (s *Session) Start(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// End clears the active user
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// User returns the active user, if any
func (s *Session) User() (*entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.user != nil
}
