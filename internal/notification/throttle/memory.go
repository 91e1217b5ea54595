package throttle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a single-process throttle store for tests and dev
// setups without redis. Expired keys are dropped lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) Throttled(ctx context.Context, userID uuid.UUID, notifType string) (bool, error) {
	key := throttleKey(userID, notifType)

	s.mu.RLock()
	deadline, ok := s.expires[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if s.now().Before(deadline) {
		return true, nil
	}

	s.mu.Lock()
	if d, ok := s.expires[key]; ok && !s.now().Before(d) {
		delete(s.expires, key)
	}
	s.mu.Unlock()
	return false, nil
}

func (s *MemoryStore) MarkSent(ctx context.Context, userID uuid.UUID, notifType string, window time.Duration) error {
	s.mu.Lock()
	s.expires[throttleKey(userID, notifType)] = s.now().Add(window)
	s.mu.Unlock()
	return nil
}
