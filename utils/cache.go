// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"barberbook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for auth session storage and
	// token-hash caching.
	AuthCacheClient *redis.Client
	// BookingCacheClient holds in-progress booking wizard forms.
	BookingCacheClient *redis.Client
)

// InitRedis initializes every Redis client the portal uses.
func InitRedis() {
	InitCache()
	InitAuthCache()
	InitBookingCache()
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newClient(config.AppConfig.RedisCacheDB)
}

// InitAuthCache initializes the Redis client for auth storage.
func InitAuthCache() {
	AuthCacheClient = newClient(config.AppConfig.RedisAuthDB)
}

// InitBookingCache initializes the Redis client for wizard session state.
func InitBookingCache() {
	BookingCacheClient = newClient(config.AppConfig.RedisBookingDB)
}

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for auth storage.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// GetBookingCacheClient returns the Redis client for wizard session state.
func GetBookingCacheClient() *redis.Client {
	if BookingCacheClient == nil {
		InitBookingCache()
	}
	return BookingCacheClient
}
