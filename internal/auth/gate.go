// Package auth guards the generator behind a shared password.
package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"
)

// ErrLocked is returned while the cooldown after too many failed
// attempts is still running.
var ErrLocked = errors.New("too many failed attempts, try again later")

// ErrWrongPassword is returned for a failed comparison.
var ErrWrongPassword = errors.New("wrong password")

// Gate verifies the shared password in constant time and locks out
// callers after repeated failures.
type Gate struct {
	password    string
	maxAttempts int
	lockout     time.Duration
	now         func() time.Time

	mu       sync.Mutex
	failures int
	lockedAt time.Time
}

type GateOptions struct {
	Password    string
	MaxAttempts int
	Lockout     time.Duration
}

func NewGate(opts GateOptions) *Gate {
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	lockout := opts.Lockout
	if lockout <= 0 {
		lockout = 60 * time.Second
	}

	return &Gate{
		password:    opts.Password,
		maxAttempts: maxAttempts,
		lockout:     lockout,
		now:         time.Now,
	}
}

// Enabled reports whether a password is configured at all.
func (g *Gate) Enabled() bool {
	return g.password != ""
}

// Check verifies the candidate password. Comparison time does not
// depend on where the first mismatching byte sits.
func (g *Gate) Check(candidate string) error {
	if !g.Enabled() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failures >= g.maxAttempts {
		if g.now().Sub(g.lockedAt) < g.lockout {
			return ErrLocked
		}
		g.failures = 0
	}

	if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.password)) == 1 {
		g.failures = 0
		return nil
	}

	g.failures++
	if g.failures >= g.maxAttempts {
		g.lockedAt = g.now()
	}
	return ErrWrongPassword
}
