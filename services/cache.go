package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds recent live search responses so repeated identical
// searches skip the provider round trip. Synthetic results are never
// cached.
type Cache interface {
	Get(ctx context.Context, category string, req interface{}, out interface{}) bool
	Set(ctx context.Context, category string, req interface{}, results interface{})
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, category string, req interface{}, out interface{}) bool {
	data, err := c.client.Get(ctx, cacheKey(category, req)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (c *RedisCache) Set(ctx context.Context, category string, req interface{}, results interface{}) {
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(category, req), data, c.ttl)
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache { return &NoOpCache{} }

func (c *NoOpCache) Get(ctx context.Context, category string, req interface{}, out interface{}) bool {
	return false
}

func (c *NoOpCache) Set(ctx context.Context, category string, req interface{}, results interface{}) {
}

func cacheKey(category string, req interface{}) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return "search:" + category + ":" + hex.EncodeToString(hash[:])
}
