package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estateops/backend/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

// RedisIdempotencyStore implements IdempotencyStore using Redis.
// This is suitable for distributed deployments where multiple instances
// need to share idempotency state.
type RedisIdempotencyStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisIdempotencyStore creates a new Redis-based idempotency store
func NewRedisIdempotencyStore(cfg RedisConfig) (*RedisIdempotencyStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisIdempotencyStore{
		client:    client,
		keyPrefix: "idempotency:",
	}, nil
}

// NewRedisIdempotencyStoreWithClient creates a store with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisIdempotencyStoreWithClient(client *redis.Client, keyPrefix string) *RedisIdempotencyStore {
	if keyPrefix == "" {
		keyPrefix = "idempotency:"
	}
	return &RedisIdempotencyStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// SetNX stores the value under key if the key is absent and returns true.
// Returns false (and the stored value) when the key already exists.
// Uses SET NX so the check and the write are one atomic operation.
func (s *RedisIdempotencyStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, string, error) {
	fullKey := s.keyPrefix + key

	ok, err := s.client.SetNX(ctx, fullKey, value, ttl).Result()
	if err != nil {
		return false, "", fmt.Errorf("failed to set idempotency key: %w", err)
	}
	if ok {
		return true, value, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Result()
	if err != nil {
		// The key may have expired between SETNX and GET; treat as absent
		if errors.Is(err, redis.Nil) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to read idempotency key: %w", err)
	}
	return false, existing, nil
}

// Get returns the stored value for key, or "" when absent
func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read idempotency key: %w", err)
	}
	return value, nil
}

// Delete removes the key so a later request may reserve it again
func (s *RedisIdempotencyStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete idempotency key: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisIdempotencyStore) Close() error {
	return s.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (s *RedisIdempotencyStore) GetClient() *redis.Client {
	return s.client
}

// Ensure RedisIdempotencyStore implements IdempotencyStore
var _ shared.IdempotencyStore = (*RedisIdempotencyStore)(nil)
