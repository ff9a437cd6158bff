package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/BradenHooton/planwell/internal/models"
)

// otpEntry is one pending verification code. Entries live in process
// memory only and are lost on restart.
type otpEntry struct {
	code      string
	expiresAt time.Time
}

// OTPRegistry holds pending registration codes keyed by email.
// A re-request overwrites the previous entry; a successful verify
// consumes it. Expiry is checked at verify time, never swept.
type OTPRegistry struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	ttl     time.Duration
}

// NewOTPRegistry creates a registry whose codes expire ttl after storage.
func NewOTPRegistry(ttl time.Duration) *OTPRegistry {
	return &OTPRegistry{
		entries: make(map[string]otpEntry),
		ttl:     ttl,
	}
}

// GenerateCode returns a uniformly random 6-digit numeric code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Store records a code for the email, replacing any previous entry,
// and returns the expiry timestamp.
func (r *OTPRegistry) Store(email, code string) time.Time {
	expiresAt := time.Now().Add(r.ttl)

	r.mu.Lock()
	r.entries[email] = otpEntry{code: code, expiresAt: expiresAt}
	r.mu.Unlock()

	return expiresAt
}

// Verify compares the submitted code against the stored entry.
// Returns ErrOTPNotFound when no entry exists for the email,
// ErrOTPExpired when the entry is past its expiry (the entry is
// discarded), and ErrOTPInvalid on mismatch (the entry stays so the
// user may retry). On match the entry is consumed and cannot be
// replayed.
func (r *OTPRegistry) Verify(email, submitted string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[email]
	if !ok {
		return models.ErrOTPNotFound
	}

	if time.Now().After(entry.expiresAt) {
		delete(r.entries, email)
		return models.ErrOTPExpired
	}

	if entry.code != submitted {
		return models.ErrOTPInvalid
	}

	delete(r.entries, email)
	return nil
}

// Clear removes any pending entry for the email. Registration calls
// this so a leftover code cannot outlive the account it was meant to
// create.
func (r *OTPRegistry) Clear(email string) {
	r.mu.Lock()
	delete(r.entries, email)
	r.mu.Unlock()
}
