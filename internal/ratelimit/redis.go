package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "gym:login:"

// RedisLimiter comparte el contador entre réplicas. La ventana empieza con
// el primer fallo (INCR + EXPIRE).
type RedisLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLimiter(client *redis.Client, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Get(ctx, keyPrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return n < r.maxAttempts, nil
}

func (r *RedisLimiter) Fail(ctx context.Context, key string) error {
	k := keyPrefix + key

	n, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		return r.client.Expire(ctx, k, r.window).Err()
	}
	return nil
}

func (r *RedisLimiter) Reset(ctx context.Context, key string) error {
	return r.client.Del(ctx, keyPrefix+key).Err()
}

func (r *RedisLimiter) Close() error {
	return r.client.Close()
}

var _ Limiter = (*RedisLimiter)(nil)
