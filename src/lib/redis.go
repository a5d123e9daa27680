package lib

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

// CacheSearchResult stores a serialized hotel search response for a short
// window. Failures are logged and swallowed; the cache is best effort.
func CacheSearchResult(key string, payload []byte, ttl time.Duration) {
	rdb := GetRedisClient()
	if rdb == nil {
		return
	}
	if err := rdb.SetEx(context.Background(), key, payload, ttl).Err(); err != nil {
		log.Printf("[redis] Failed to cache search result %s: %s\n", key, err.Error())
	}
}

// GetCachedSearchResult returns the cached response for a search key, or
// nil on miss or error.
func GetCachedSearchResult(key string) []byte {
	rdb := GetRedisClient()
	if rdb == nil {
		return nil
	}
	val, err := rdb.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil
	} else if err != nil {
		log.Printf("[redis] Error retrieving value for %s: %s\n", key, err.Error())
		return nil
	}
	return val
}
