package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Store keeps checkout sessions between requests. Handlers follow a
// read-modify-write cycle: Get, mutate, Save.
type Store interface {
	Get(ctx context.Context, key string) (*Session, error)
	Save(ctx context.Context, key string, s *Session) error
	Delete(ctx context.Context, key string) error
}

// SessionKey builds the store key for one user's checkout at one restaurant
func SessionKey(userID, restaurantID string) string {
	return fmt.Sprintf("%s:%s", userID, restaurantID)
}

// MemoryStore is an in-process Store used when no Redis URL is configured
// (and in tests). Sessions are kept as JSON so reads never alias a session
// another request is mutating.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

// Get returns the stored session, or a fresh empty one if none exists
func (m *MemoryStore) Get(ctx context.Context, key string) (*Session, error) {
	m.mu.RLock()
	raw, ok := m.sessions[key]
	m.mu.RUnlock()
	if !ok {
		return &Session{}, nil
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (m *MemoryStore) Save(ctx context.Context, key string, s *Session) error {
	s.UpdatedAt = time.Now()
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	m.mu.Lock()
	m.sessions[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.sessions, key)
	m.mu.Unlock()
	return nil
}
