package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/valkey-io/valkey-go"

	"arches/internal/domain/service"
)

// valkeyCache implements service.ResultCache on a Valkey (Redis-compatible) server.
type valkeyCache struct {
	client valkey.Client
	logger *slog.Logger
}

// NewValkeyCache connects to the given address.
func NewValkeyCache(address string, logger *slog.Logger) (service.ResultCache, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{address},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "valkey connect %s", address)
	}

	return &valkeyCache{client: client, logger: logger}, nil
}

func (c *valkeyCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).AsBytes()
	if valkey.IsValkeyNil(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "valkey get %s", key)
	}

	return value, true, nil
}

func (c *valkeyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	cmd := c.client.B().Set().Key(key).Value(valkey.BinaryString(value)).Ex(ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return errors.Wrapf(err, "valkey set %s", key)
	}

	return nil
}

func (c *valkeyCache) Close() error {
	c.client.Close()
	c.logger.Info("Valkey client closed")

	return nil
}
