// File: services/auth/storage.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// StoragePrefix namespaces portal session storage keys in Redis.
const StoragePrefix = "portalSession:"

// storageTTL bounds how long an abandoned portal session survives. It matches
// the refresh-token lifetime so a returning user is never logged out earlier
// than the token itself expires.
const storageTTL = 7 * 24 * time.Hour

// RedisStorage implements Storage on Redis, one namespace per portal session.
type RedisStorage struct {
	client    *redis.Client
	sessionID string
}

// NewRedisStorage creates the persisted storage backend for one portal session.
func NewRedisStorage(client *redis.Client, sessionID string) *RedisStorage {
	return &RedisStorage{client: client, sessionID: sessionID}
}

func (s *RedisStorage) key(key string) string {
	return StoragePrefix + s.sessionID + ":" + key
}

// GetItem returns the stored value, or "" with no error when the key is absent.
func (s *RedisStorage) GetItem(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session storage key %s: %w", key, err)
	}
	return val, nil
}

// SetItem stores a value with the session TTL.
func (s *RedisStorage) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, storageTTL).Err(); err != nil {
		return fmt.Errorf("failed to write session storage key %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes a key. Deleting an absent key is not an error.
func (s *RedisStorage) RemoveItem(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to remove session storage key %s: %w", key, err)
	}
	return nil
}
