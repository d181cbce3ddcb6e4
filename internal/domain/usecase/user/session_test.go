package user

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/payment-console/internal/domain/entity"
)

func TestSession(t *testing.T) {
	session := NewSession()

	_, ok := session.User()
	assert.False(t, ok)

	first := &entity.User{ID: "user-1"}
	second := &entity.User{ID: "user-2"}

	session.Start(first)
	user, ok := session.User()
	assert.True(t, ok)
	assert.Same(t, first, user)

	session.Start(second)
	user, _ = session.User()
	assert.Same(t, second, user, "only one user is active at a time")

	session.End()
	_, ok = session.User()
	assert.False(t, ok)
}

func TestSessionConcurrentAccess(t *testing.T) {
	session := NewSession()
	user := &entity.User{ID: "user-1"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			session.Start(user)
		}()
		go func() {
			defer wg.Done()
			session.User()
		}()
	}
	wg.Wait()

	current, ok := session.User()
	assert.True(t, ok)
	assert.Same(t, user, current)
}
