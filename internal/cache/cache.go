package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"
	"time" // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// DefaultTTL is how long read-side responses stay cached.
const DefaultTTL = 60 * time.Second

// Cache is a JSON read-cache over Redis. Every method degrades gracefully:
// a Redis failure means a cache miss, never a request failure.
type Cache struct {
	rdb *redis.Client
}

// New wraps a Redis client.
func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Get retrieves a key and unmarshals it into dest. The bool reports a hit.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// Set stores a value as JSON with a TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// Key helpers, one namespace per cached read.

// WalletKey is the cache key for an account's wallet response.
func WalletKey(accountID string) string {
	return "wallet:account:" + accountID
}

// ProfileKey is the cache key for an account's profile response.
func ProfileKey(accountID string) string {
	return "profile:account:" + accountID
}

// HistoryKey is the cache key for one page of an account's history.
func HistoryKey(accountID string, page, pageSize int) string {
	return "txhistory:account:" + accountID + ":page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
}

// MarketKey is the cache key for the top-N market response.
func MarketKey(n int) string {
	return "market:top:" + strconv.Itoa(n)
}

// InvalidateAccount drops the cached wallet and the first history pages for
// an account after a fund-moving operation.
func (c *Cache) InvalidateAccount(ctx context.Context, accountID string) {
	_ = c.Delete(ctx, WalletKey(accountID))
	// Simple version: only the first few pages are ever cached hot.
	for page := 1; page <= 5; page++ {
		_ = c.Delete(ctx, HistoryKey(accountID, page, 20))
	}
}
