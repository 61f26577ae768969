package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"aqua-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// Report cache keys
const (
	DailySummaryKeyFmt = "report:daily:%s" // date in YYYY-MM-DD
)

var client *redis.Client

// Init initializes the Redis connection. The cache degrades gracefully:
// if Redis is unavailable every helper becomes a no-op.
func Init(cfg *config.Config) error {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	key := hashCredentials(email, password)
	userID, err := client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password string, userID int64) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Set(ctx, key, userID, 15*time.Minute)
}

// InvalidateAuth removes cached auth for a user (on password change/logout)
func InvalidateAuth(ctx context.Context, email, password string) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Del(ctx, key)
}

// GetCachedDailySummary returns the cached daily summary JSON if available
func GetCachedDailySummary(ctx context.Context, date string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, fmt.Sprintf(DailySummaryKeyFmt, date)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheDailySummary caches a daily summary for 5 minutes
func CacheDailySummary(ctx context.Context, date string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, fmt.Sprintf(DailySummaryKeyFmt, date), data, 5*time.Minute)
}

// InvalidateDailySummaries clears all cached daily summaries.
// Called after every lot mutation so reads never serve stale totals.
func InvalidateDailySummaries(ctx context.Context) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, "report:daily:*").Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}
