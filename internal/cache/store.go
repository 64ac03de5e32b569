package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per key expiry. Get returns domain.ErrNotFound
// for absent or expired keys.
type Store interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Consumer is implemented by stores that can atomically delete a key only when
// it still holds the expected value.
type Consumer interface {
	Consume(ctx context.Context, key string, expected string) (bool, error)
}

// History keeps a bounded, expiring list of entries per key.
type History interface {
	Append(ctx context.Context, key string, limit int, ttl time.Duration, values ...string) error
	Range(ctx context.Context, key string) ([]string, error)
}
