package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map. It is the
// fallback backend when Redis is not reachable and the backend used
// in tests. Expired entries are dropped lazily on Resolve and swept
// on Create; with the expected low session cardinality a single lock
// around the map is sufficient.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time // overridable in tests
}

type memoryEntry struct {
	username  string
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, username string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for t, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, t)
		}
	}
	s.entries[token] = memoryEntry{username: username, expiresAt: now.Add(s.ttl)}
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return "", ErrNoSession
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, token)
		return "", ErrNoSession
	}
	return e.username, nil
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
