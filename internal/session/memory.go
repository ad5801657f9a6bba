package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used by tests and local development
// without a database. Expired records are dropped lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]memoryRecord
	now     func() time.Time
}

type memoryRecord struct {
	user      *User
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]memoryRecord),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[token]
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(record.expiresAt) {
		delete(s.records, token)
		return nil, ErrNotFound
	}
	return &Session{Token: token, User: record.user}, nil
}

func (s *MemoryStore) Set(_ context.Context, token string, user *User, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[token] = memoryRecord{user: user, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Refresh(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[token]
	if !ok {
		return nil
	}
	record.expiresAt = s.now().Add(ttl)
	s.records[token] = record
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, token)
	return nil
}
