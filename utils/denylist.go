package utils

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist records signed-out JWT tokens until they would have expired
// anyway. A token on the list no longer counts as an active session.
type Denylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) bool
}

const denylistKeyPrefix = "signout:"

// RedisDenylist stores revoked tokens in Redis with a TTL
type RedisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist creates a Redis-backed token denylist
func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to record
	}
	return d.client.Set(ctx, denylistKeyPrefix+token, "1", ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, token string) bool {
	n, err := d.client.Exists(ctx, denylistKeyPrefix+token).Result()
	return err == nil && n > 0
}

// MemoryDenylist is the in-process fallback used when no Redis URL is
// configured. Entries are pruned lazily on lookup.
type MemoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewMemoryDenylist creates an empty in-memory denylist
func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{revoked: make(map[string]time.Time)}
}

func (d *MemoryDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.mu.Lock()
	d.revoked[token] = time.Now().Add(ttl)
	d.mu.Unlock()
	return nil
}

func (d *MemoryDenylist) IsRevoked(ctx context.Context, token string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	exp, ok := d.revoked[token]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(d.revoked, token)
		return false
	}
	return true
}
