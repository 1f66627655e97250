// Package redis provides the Redis-backed read-side cache for rendered
// logical-order listings. Entries are rebuildable at any time, so the cache
// carries no durability requirements; everything expires by TTL and whole
// companies can be invalidated after a write.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/ports"

	rd "github.com/redis/go-redis/v9"
)

// OrderListCache implements ports.OrderListCache on a Redis client.
type OrderListCache struct {
	client *rd.Client
}

// NewOrderListCache creates a Redis order-list cache.
func NewOrderListCache(client *rd.Client) *OrderListCache {
	return &OrderListCache{client: client}
}

// Get retrieves the cached listing payload for the key.
// Returns ports.ErrCacheMiss when no entry exists.
func (c *OrderListCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, listingKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return nil, ports.ErrCacheMiss
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the listing payload under the key with the given TTL.
func (c *OrderListCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, listingKey(key), payload, ttl).Err()
}

// Invalidate removes every listing entry whose key starts with the company
// key. Uses SCAN rather than KEYS so invalidation never blocks the server.
func (c *OrderListCache) Invalidate(ctx context.Context, companyKey string) error {
	pattern := listingKey(companyKey) + "*"

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// listingKey namespaces listing entries within the shared Redis instance.
func listingKey(key string) string {
	return fmt.Sprintf("orderflow:listing:%s", key)
}
