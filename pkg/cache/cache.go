// Package cache stores rendered avatar bytes keyed by request
// parameters. Avatars are pure functions of their options, so cache
// entries never go stale; TTLs exist only to bound memory.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the storage contract the avatar server renders against.
type Cache interface {
	// Get returns the cached bytes for key and whether it was a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key if present.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Key builds a deterministic cache key from the given parts:
// prefix:sha256(parts). Identical render parameters always map to the
// same key, which also makes it usable as an HTTP ETag.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}
