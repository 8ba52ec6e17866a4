package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a JSON cache in front of Postgres. A nil *RedisClient is a
// valid, always-missing cache.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client instance from a redis:// URL or a host:port address
func NewRedisClient(addr string, db int) (*RedisClient, error) {
	opt, err := redis.ParseURL(addr)
	if err != nil {
		opt = &redis.Options{Addr: addr, DB: db}
	}
	return &RedisClient{client: redis.NewClient(opt)}, nil
}

// GetJSON decodes the cached value of key into out. The bool reports a hit.
func (rc *RedisClient) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	if rc == nil {
		return false, nil
	}
	data, err := rc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error getting %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("error unmarshaling %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores v under key for ttl
func (rc *RedisClient) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	if rc == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", key, err)
	}
	return rc.client.Set(ctx, key, data, ttl).Err()
}
