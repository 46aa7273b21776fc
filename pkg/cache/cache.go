// Package cache provides a small read-cache abstraction used for
// availability query results. Entries are short-lived: the reconcile
// worker flushes the availability prefix after any cycle that changed
// venue statuses, and TTLs bound staleness between flushes.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is not present or has expired
var ErrCacheMiss = errors.New("cache: key not found")

// Store is a byte-oriented cache with TTL expiry and prefix flushing
type Store interface {
	// Get returns the value for key, or ErrCacheMiss
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key for at most ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// FlushPrefix removes every key starting with prefix
	FlushPrefix(ctx context.Context, prefix string) error
}
