// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"nestcare/config"
)

// QuoteCacheTTL is the time-to-live for cached pricing quotes.
const QuoteCacheTTL = 10 * time.Minute

// QuoteCachePrefix is the prefix used for Redis quote cache keys.
const QuoteCachePrefix = "quote:"

// QuoteCacheClient is the dedicated client for quote caching.
var QuoteCacheClient *redis.Client

// InitQuoteCache initializes the Redis client used for quote caching.
func InitQuoteCache() {
	QuoteCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQuoteDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := QuoteCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Quote Cache): %v", err)
	}
}

// GetQuoteCacheClient returns the quote cache client.
func GetQuoteCacheClient() *redis.Client {
	if QuoteCacheClient == nil {
		InitQuoteCache()
	}
	return QuoteCacheClient
}
