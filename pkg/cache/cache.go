// Package cache provides a small file-backed cache for settled layouts.
//
// Settling a large graph costs hundreds of physics ticks; the positions a
// run produces are pure functions of the graph content, the physics
// tunables, and the tick count. The CLI caches those positions so repeated
// runs over the same input skip the simulation entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys with optional TTLs.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKey generates the cache key for a settled layout. The key covers
// everything the result depends on: the graph content hash, the physics
// tunables, and the tick count, so any change invalidates the entry.
func LayoutKey(graphHash string, physicsParams any, ticks int) string {
	return hashKey("layout", graphHash, physicsParams, ticks)
}
