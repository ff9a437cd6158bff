package auth

import "sync"

// AttemptTracker counts failed re-authentication attempts per user id
// during account deletion. Reaching the limit clears the counter and
// reports a lockout, so the next attempt starts fresh at one. State is
// process-lifetime only.
type AttemptTracker struct {
	mu       sync.Mutex
	attempts map[string]int
	limit    int
}

// NewAttemptTracker creates a tracker that locks out after limit
// consecutive failures.
func NewAttemptTracker(limit int) *AttemptTracker {
	return &AttemptTracker{
		attempts: make(map[string]int),
		limit:    limit,
	}
}

// Fail records a failed attempt for the user and reports whether the
// limit was reached. On lockout the counter is removed.
func (t *AttemptTracker) Fail(userID string) (lockedOut bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	count := t.attempts[userID] + 1
	if count >= t.limit {
		delete(t.attempts, userID)
		return true
	}

	t.attempts[userID] = count
	return false
}

// Reset clears the counter for the user after a successful
// re-authentication.
func (t *AttemptTracker) Reset(userID string) {
	t.mu.Lock()
	delete(t.attempts, userID)
	t.mu.Unlock()
}

// Count returns the current failure count for the user.
func (t *AttemptTracker) Count(userID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attempts[userID]
}
