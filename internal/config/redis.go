package config

// Redis backs the HTTP response cache on read endpoints.  Connection
// parameters come from environment variables; when the server cannot be
// reached at startup the constructor returns nil and callers degrade by
// disabling caching.

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from REDIS_ADDR (host:port,
// default localhost:6379), REDIS_PASSWORD and REDIS_DB.  It pings the
// server with a short timeout and returns nil on failure so the rest of
// the application keeps working without a cache.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if s := os.Getenv("REDIS_DB"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			dbNum = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// CacheConfig defines settings for the response cache middleware.
// Caching applies to GET requests only; the key derives from the
// matched route and query string.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads cache settings from the environment, with a
// short default TTL so stale reads age out quickly after writes.
func LoadCacheConfig() CacheConfig {
	ttl, err := time.ParseDuration(getenvDefault("CACHE_TTL", "30s"))
	if err != nil {
		ttl = 30 * time.Second
	}
	return CacheConfig{
		Enabled: getenvBool("CACHE_ENABLED", true),
		TTL:     ttl,
		Prefix:  getenvDefault("CACHE_PREFIX", "hotelcache"),
	}
}
