package config

import (
    "os"
    "time"
)

// CacheConfig defines settings for the redis profile cache.  When Enabled is
// false or no Redis client is configured, caching is disabled and the handler
// reads from the database on every request.  TTL defines the lifetime of
// cache entries and Prefix namespaces keys so the cache can share a Redis
// database with other services.
type CacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled: getenv("CACHE_ENABLED", "true") == "true",
        TTL:     parseDur(getenv("CACHE_TTL", "60s")),
        Prefix:  getenv("CACHE_PREFIX", "authcache"),
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
