package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/petspa/salonsite/pkg/cache"
)

// RedisConfig configures a Redis-backed store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// TTL expires idle visitor keys. Zero keeps them forever.
	TTL time.Duration
}

// Redis stores values as plain Redis strings.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis and verifies the connection. Transient
// connection failures are retried with backoff.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := cache.RetryWithBackoff(ctx, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return cache.Retryable(err)
		}
		return nil
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return &Redis{client: client, ttl: cfg.TTL}, nil
}

// NewRedisFromClient wraps an existing client. The store takes ownership and
// closes it on Close.
func NewRedisFromClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (s *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, mapRedisErr(err)
	}
	if s.ttl > 0 {
		// Sliding expiry: reading a preference keeps it alive.
		_ = s.client.Expire(ctx, key, s.ttl).Err()
	}
	return v, true, nil
}

func (s *Redis) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return mapRedisErr(s.client.Set(ctx, key, value, s.ttl).Err())
}

func (s *Redis) Delete(ctx context.Context, key string) error {
	return mapRedisErr(s.client.Del(ctx, key).Err())
}

func (s *Redis) Close() error {
	return s.client.Close()
}

func mapRedisErr(err error) error {
	if errors.Is(err, redis.ErrClosed) {
		return ErrClosed
	}
	return err
}

var _ Storage = (*Redis)(nil)
