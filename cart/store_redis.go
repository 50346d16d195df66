package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "checkout:"

// DefaultSessionTTL bounds how long an abandoned checkout survives in Redis
const DefaultSessionTTL = 2 * time.Hour

// RedisStore keeps checkout sessions in Redis so they survive a process
// restart and are shared across instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns the stored session, or a fresh empty one if none exists
func (r *RedisStore) Get(ctx context.Context, key string) (*Session, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, s *Session) error {
	s.UpdatedAt = time.Now()
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
