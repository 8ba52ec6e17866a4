package redis

import (
	"context"
	"fmt"
)

// InitRedis initializes the Redis connection and checks it answers
func InitRedis(addr string, db int) (*RedisClient, error) {
	rc, err := NewRedisClient(addr, db)
	if err != nil {
		return nil, err
	}

	if err := rc.client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rc, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if rc == nil {
		return nil
	}
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %w", err)
	}
	return nil
}
