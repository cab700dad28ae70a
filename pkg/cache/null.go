package cache

import (
	"context"
	"time"
)

// Null is a no-op cache that never stores anything. Useful for tests
// and for running the server with caching disabled.
type Null struct{}

// NewNull creates a null cache.
func NewNull() Cache { return Null{} }

// Get always returns a miss.
func (Null) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (Null) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (Null) Delete(ctx context.Context, key string) error { return nil }

// Close does nothing.
func (Null) Close() error { return nil }

var _ Cache = Null{}
