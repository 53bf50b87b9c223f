package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joeshaw/envdecode"
	"github.com/redis/go-redis/v9"

	agentone "github.com/agentone/agentone-go"
)

// StoreType selects a session store driver.
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeFile   StoreType = "file"
	StoreTypeRedis  StoreType = "redis"
)

// NewStore creates a session store for the given driver type.
// The file driver requires WithDir; the redis driver requires
// WithRedisClient.
func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	config := &storeConfig{}
	for _, opt := range opts {
		opt(config)
	}

	switch storeType {
	case StoreTypeMemory:
		return &memoryStore{values: make(map[string]string)}, nil

	case StoreTypeFile:
		if config.dir == "" {
			return nil, agentone.ErrInvalidConfig
		}
		return newFileStore(config.dir)

	case StoreTypeRedis:
		if config.redisClient == nil {
			return nil, agentone.ErrInvalidConfig
		}
		return &redisStore{client: config.redisClient, ttl: config.redisTTL}, nil

	default:
		return nil, agentone.ErrInvalidStoreType
	}
}

// StoreConfig is environment-driven session store configuration.
type StoreConfig struct {
	// Driver selects the store driver. ENV: AGENTONE_STORE_DRIVER
	Driver string `env:"AGENTONE_STORE_DRIVER,default=file"`
	// Dir is the state directory for the file driver. ENV: AGENTONE_STATE_DIR
	Dir string `env:"AGENTONE_STATE_DIR"`
	// RedisAddr like "localhost:6379". ENV: AGENTONE_REDIS_ADDR
	RedisAddr string `env:"AGENTONE_REDIS_ADDR,default=localhost:6379"`
}

// NewStoreFromEnv builds a store using envdecode to populate StoreConfig.
// The file driver defaults its state directory to the user config dir.
func NewStoreFromEnv() (Store, error) {
	var cfg StoreConfig
	// Defaults are provided via struct tags.
	_ = envdecode.Decode(&cfg)

	switch StoreType(cfg.Driver) {
	case StoreTypeMemory:
		return NewStore(StoreTypeMemory)
	case StoreTypeFile:
		dir := cfg.Dir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("resolve state dir: %w", err)
			}
			dir = filepath.Join(base, "agentone")
		}
		return NewStore(StoreTypeFile, WithDir(dir))
	case StoreTypeRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return NewStore(StoreTypeRedis, WithRedisClient(client))
	default:
		return nil, agentone.ErrInvalidStoreType
	}
}

// memoryStore implements Store using an in-memory map. State does not
// survive the process; intended for tests and ephemeral tooling.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// Get implements Store.
func (s *memoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.values[key]
	if !exists {
		return "", agentone.ErrNotFound
	}
	return value, nil
}

// Set implements Store.
func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete implements Store.
func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Close implements Store.
func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = nil
	return nil
}

// Compile-time check that memoryStore implements Store.
var _ Store = (*memoryStore)(nil)
