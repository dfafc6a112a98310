package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-key expiration
type Store interface {
	// Get retrieves a value by key. The second return is false when the
	// key is absent or expired.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}
