package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const countTTL = 30 * time.Second

// CountCache caches the admin dashboard entity counts in Redis.
// Key format: count:<entity>
type CountCache struct {
	client *redis.Client
}

// NewCountCache creates a CountCache wrapping the given Redis client.
func NewCountCache(client *redis.Client) *CountCache {
	return &CountCache{client: client}
}

// GetCount returns the cached count for an entity. A miss and a backend
// error both report ok=false; callers fall back to the store.
func (c *CountCache) GetCount(ctx context.Context, entity string) (int64, bool) {
	n, err := c.client.Get(ctx, c.key(entity)).Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetCount records the count for an entity (expires after countTTL).
func (c *CountCache) SetCount(ctx context.Context, entity string, n int64) error {
	return c.client.Set(ctx, c.key(entity), n, countTTL).Err()
}

func (c *CountCache) key(entity string) string {
	return fmt.Sprintf("count:%s", entity)
}
