package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	agentone "github.com/agentone/agentone-go"
)

// Redis key prefix for persisted session keys.
const redisKeyPrefix = "agentone:"

// redisStore persists session keys in Redis so parallel processes share one
// session, the way browser tabs share local storage. A token rotated by a
// login elsewhere is observed on the next read.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Get implements Store.
func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", agentone.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set implements Store.
func (s *redisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, redisKeyPrefix+key, value, s.ttl).Err()
}

// Delete implements Store.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, redisKeyPrefix+key).Err()
}

// Close implements Store.
func (s *redisStore) Close() error {
	return s.client.Close()
}

// Compile-time check that redisStore implements Store.
var _ Store = (*redisStore)(nil)
