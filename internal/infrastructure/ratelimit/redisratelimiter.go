package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "domus:ratelimit"

// RedisRateLimiter counts requests in fixed windows keyed by window start, so
// a key costs one counter per window instead of a member per request.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, cfg Config) (bool, error) {
	now := time.Now()

	if cfg.RequestsPerMinute > 0 {
		ok, err := l.countWindow(ctx, key, time.Minute, cfg.RequestsPerMinute, now)
		if err != nil || !ok {
			return ok, err
		}
	}
	if cfg.RequestsPerHour > 0 {
		ok, err := l.countWindow(ctx, key, time.Hour, cfg.RequestsPerHour, now)
		if err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}

func (l *RedisRateLimiter) countWindow(ctx context.Context, key string, window time.Duration, limit int, now time.Time) (bool, error) {
	redisKey := windowKey(key, window, now)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	// Expire a little past the window so Remaining can still read a window
	// that just closed.
	pipe.Expire(ctx, redisKey, window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter for %s: %w", key, err)
	}

	return incr.Val() <= int64(limit), nil
}

func (l *RedisRateLimiter) Remaining(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := l.client.Get(ctx, windowKey(key, window, time.Now())).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("rate limit read for %s: %w", key, err)
	}
	return count, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("rate limit reset for %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

func windowKey(key string, window time.Duration, now time.Time) string {
	windowStart := now.Truncate(window).Unix()
	return fmt.Sprintf("%s:%s:%s:%d", keyPrefix, key, window.String(), windowStart)
}
