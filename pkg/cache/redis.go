package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores pages in Redis under a key namespace.
type RedisCache struct {
	client    *redis.Client
	namespace string
}

// RedisOptions configures NewRedisCache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// Namespace prefixes every key; Clear only touches this namespace.
	Namespace string
}

// NewRedisCache connects and pings Redis, retrying transient failures.
func NewRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	err := RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return Retryable(fmt.Errorf("%w: %w", ErrUnavailable, err))
		}
		return nil
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
	}
	return NewRedisCacheFromClient(client, opts.Namespace), nil
}

// NewRedisCacheFromClient wraps an existing client. The cache closes it on
// Close.
func NewRedisCacheFromClient(client *redis.Client, namespace string) *RedisCache {
	if namespace == "" {
		namespace = "salonsite:"
	}
	return &RedisCache{client: client, namespace: namespace}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.namespace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, mapRedisErr(err)
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return mapRedisErr(c.client.Set(ctx, c.namespace+key, data, ttl).Err())
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return mapRedisErr(c.client.Del(ctx, c.namespace+key).Err())
}

// Clear deletes every key in the namespace using SCAN, so it never blocks
// the server the way KEYS would.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.namespace+"*", 256).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 256 {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return mapRedisErr(err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return mapRedisErr(err)
	}
	if len(batch) > 0 {
		return mapRedisErr(c.client.Del(ctx, batch...).Err())
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func mapRedisErr(err error) error {
	if errors.Is(err, redis.ErrClosed) {
		return ErrClosed
	}
	return err
}

var (
	_ Cache   = (*RedisCache)(nil)
	_ Clearer = (*RedisCache)(nil)
)
