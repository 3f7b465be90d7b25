// Package gmail connects a user's mailbox and pulls lab-report attachments
// through the ingestion pipeline: OAuth, metadata sweep, two-stage
// classification, then per-attachment download and hand-off to the report
// processor.
package gmail

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

// stateTTL bounds how long an issued OAuth state stays redeemable.
const stateTTL = 10 * time.Minute

// StateStore issues and consumes one-time OAuth state values. In-memory:
// an interrupted auth flow just restarts.
type StateStore struct {
	mu      sync.Mutex
	entries map[string]stateEntry
	now     func() time.Time
}

type stateEntry struct {
	userID   string
	issuedAt time.Time
}

// NewStateStore creates an empty store.
func NewStateStore() *StateStore {
	return &StateStore{entries: map[string]stateEntry{}, now: time.Now}
}

// Issue generates a 32-byte random state bound to userID.
func (s *StateStore) Issue(userID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	s.entries[state] = stateEntry{userID: userID, issuedAt: s.now()}
	return state, nil
}

// Consume validates a state and returns the bound user. A state is
// single-use: a second Consume with the same value fails.
func (s *StateStore) Consume(state string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return "", false
	}
	delete(s.entries, state)
	if s.now().Sub(entry.issuedAt) > stateTTL {
		return "", false
	}
	return entry.userID, true
}

// prune drops expired entries. Called under the lock.
func (s *StateStore) prune() {
	cutoff := s.now().Add(-stateTTL)
	for state, entry := range s.entries {
		if entry.issuedAt.Before(cutoff) {
			delete(s.entries, state)
		}
	}
}
