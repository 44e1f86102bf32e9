package cache

import (
	"context"
	"time"

	"arches/internal/domain/service"
)

type noopCache struct{}

// NewNoopCache returns a cache that never stores anything.
func NewNoopCache() service.ResultCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (noopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (noopCache) Close() error {
	return nil
}
