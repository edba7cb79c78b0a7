// Package cache stores computed lookup tables and rendered images.
//
// Layouts are pure functions of their request, so every entry can be reused
// until the engine changes. Keys carry [KeyVersion] to drop entries written
// by an older engine.
//
// Implementations:
//
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [MemoryCache]: process local, used by the HTTP server
//   - [NullCache]: stores nothing
package cache

import (
	"context"
	"time"
)

// KeyVersion is part of every key. Bump it when layouts change.
const KeyVersion = "v1"

// TTLs per entry type.
const (
	TTLTable    = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
