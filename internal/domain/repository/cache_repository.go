package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-oriented cache. Values are JSON encoded by the
// callers; a nil result with nil error is a cache miss.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
}
