package service

import (
	"context"
	"time"
)

// ResultCache stores serialized query results keyed by a caller-built string.
// Implementations must treat a miss as (nil, false, nil).
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}
