package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by OrderListCache.Get when no entry exists for the
// key. Defined here so query handlers can distinguish a miss from a cache
// outage without importing the adapter.
var ErrCacheMiss = errors.New("cache miss")

// OrderListCache is the read-side cache for rendered logical-order listings.
// Logical orders are rebuilt on every read, so entries are safe to drop at any
// time; a failing cache degrades to uncached reads, never to an error.
type OrderListCache interface {
	// Get retrieves the cached listing payload for the key.
	// Returns ErrCacheMiss when no entry exists.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the listing payload under the key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate removes every listing entry for the company, called after a
	// shipment creation changes requisition statuses.
	Invalidate(ctx context.Context, companyKey string) error
}
