package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is Cache shared between service instances.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

// NewRedis returns new Redis connected to redisURL. Keys are prefixed with prefix.
func NewRedis(ctx context.Context, redisURL, prefix string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("can't parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("can't connect to redis at %s: %w", opts.Addr, err)
	}

	return &Redis{rdb: rdb, prefix: prefix}, nil
}

// Get returns value cached under key.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("can't get cached %q: %w", key, err)
	}

	return value, nil
}

// Set caches value under key for ttl.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("can't cache %q: %w", key, err)
	}

	return nil
}

// Close closes redis connection.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
