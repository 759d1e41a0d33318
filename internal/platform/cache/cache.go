package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrMiss is returned when key isn't cached or its entry expired.
var ErrMiss = errors.New("cache miss")

// Cache stores values under keys for limited time.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// GetOrLoad returns value cached under key, on miss it loads the value and caches it for ttl.
// Cache failures are logged and not fatal, loaded value is returned even if it can't be cached.
func GetOrLoad[T any](
	ctx context.Context,
	c Cache,
	logger *zerolog.Logger,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	var value T

	cached, err := c.Get(ctx, key)
	switch {
	case err == nil:
		if err := json.Unmarshal(cached, &value); err == nil {
			return value, nil
		}
	case !errors.Is(err, ErrMiss):
		logger.Warn().
			Err(err).
			Str("key", key).
			Msg("can't get cached value")
	}

	value, err = load(ctx)
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return value, fmt.Errorf("can't encode cached value: %w", err)
	}
	if err := c.Set(ctx, key, encoded, ttl); err != nil {
		logger.Warn().
			Err(err).
			Str("key", key).
			Msg("can't cache value")
	}

	return value, nil
}
