package identity

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps users in a map. It backs tests and local runs that
// have no database; semantics match PostgresStore.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]User // keyed by lowercased normalized email
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) Create(_ context.Context, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.NormalizedEmail)
	if _, ok := s.users[key]; ok {
		return ErrAlreadyExists
	}
	for _, existing := range s.users {
		if strings.EqualFold(existing.NormalizedUserName, u.NormalizedUserName) {
			return ErrAlreadyExists
		}
	}
	s.users[key] = u
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}
