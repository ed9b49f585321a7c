package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for rate limiting
type Limiter interface {
	Allow(userID string) bool
}

// InMemoryLimiter is an implementation of Limiter stored in memory
type InMemoryLimiter struct {
	users map[string]*rate.Limiter
	mu    sync.Mutex
	r     rate.Limit
	b     int
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(1, 5*time.Second, 3) -> allows 1 command every 5 seconds, burst of 3 commands
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	return &InMemoryLimiter{
		users: make(map[string]*rate.Limiter),
		r:     rate.Every(per / time.Duration(requests)),
		b:     burst,
	}
}

// Allow checks if a user is allowed to perform an action
func (l *InMemoryLimiter) Allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.users[userID]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.users[userID] = limiter
	}

	return limiter.Allow()
}
