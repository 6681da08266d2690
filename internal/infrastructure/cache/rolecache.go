package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/domus-inc/domus/internal/shared/authorization"
)

// DefaultRoleTTL bounds how stale a cached role may get.
const DefaultRoleTTL = 5 * time.Minute

var ErrRoleNotCached = errors.New("role not cached")

// RedisRoleCache caches profile roles so the auth middleware does not hit
// the database on every request.
type RedisRoleCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisRoleCache(client *redis.Client, ttl time.Duration) *RedisRoleCache {
	if ttl <= 0 {
		ttl = DefaultRoleTTL
	}
	return &RedisRoleCache{
		client: client,
		prefix: "auth:role:",
		ttl:    ttl,
	}
}

func (c *RedisRoleCache) key(userID uint) string {
	return c.prefix + strconv.FormatUint(uint64(userID), 10)
}

// Get returns the cached role for a user. ErrRoleNotCached means the caller
// must resolve the role from the profile store.
func (c *RedisRoleCache) Get(ctx context.Context, userID uint) (authorization.UserRole, error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrRoleNotCached
		}
		return "", fmt.Errorf("failed to get cached role: %w", err)
	}

	role := authorization.UserRole(val)
	if !role.IsValid() {
		// Stale or corrupted entry, treat as a miss.
		return "", ErrRoleNotCached
	}
	return role, nil
}

func (c *RedisRoleCache) Set(ctx context.Context, userID uint, role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("cannot cache invalid role: %s", role)
	}
	if err := c.client.Set(ctx, c.key(userID), role.String(), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache role: %w", err)
	}
	return nil
}

// Invalidate removes a user's cached role. No HTTP write path changes
// roles, so staleness is otherwise bounded by the TTL; the cache CLI
// calls this after a role is edited directly in the profile store.
func (c *RedisRoleCache) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached role: %w", err)
	}
	return nil
}
