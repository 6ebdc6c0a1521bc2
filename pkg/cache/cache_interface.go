package cache

import (
	"context"
	"time"
)

// Cache is the contract the repositories speak to. The concrete
// implementation lives in internal/infrastructure/cache (Redis), but
// nothing above the repository layer should care.
type Cache interface {
	// Get fetches a key and unmarshals it into dest.
	// found == false means a clean miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
