package ratelimit

import (
	"context"
	"time"
)

// Config bounds request counts per key. A zero limit disables that window.
type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, cfg Config) (bool, error)
	Remaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
