// Package cache provides a small read-through cache for user display names
// backed by Redis.  The /getuser endpoint consults it before hitting the
// database.  The cache is best effort: a nil client, a disabled config or
// any Redis error simply behaves as a miss so the service keeps working
// without Redis.
package cache

import (
    "context"
    "fmt"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/auth-service/internal/config"
)

type UserCache struct {
    rdb *redis.Client
    cfg config.CacheConfig
}

// NewUserCache builds a cache around the given client.  The client may be
// nil when Redis is unreachable; every lookup then misses.
func NewUserCache(rdb *redis.Client, cfg config.CacheConfig) *UserCache {
    return &UserCache{rdb: rdb, cfg: cfg}
}

func (uc *UserCache) key(id uint64) string {
    return fmt.Sprintf("%s:user:%d:name", uc.cfg.Prefix, id)
}

// GetName returns the cached display name for a user id.  The boolean is
// false on a miss, a disabled cache or a Redis error.
func (uc *UserCache) GetName(ctx context.Context, id uint64) (string, bool) {
    if uc == nil || uc.rdb == nil || !uc.cfg.Enabled {
        return "", false
    }
    name, err := uc.rdb.Get(ctx, uc.key(id)).Result()
    if err != nil {
        return "", false
    }
    return name, true
}

// SetName stores a display name with the configured TTL.  Failures are
// ignored; the next read falls through to the database.
func (uc *UserCache) SetName(ctx context.Context, id uint64, name string) {
    if uc == nil || uc.rdb == nil || !uc.cfg.Enabled {
        return
    }
    _ = uc.rdb.Set(ctx, uc.key(id), name, uc.cfg.TTL).Err()
}
