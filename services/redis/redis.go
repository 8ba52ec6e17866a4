package redis

import (
	"context"
	"fmt"
)

// Invalidate removes the specified keys from Redis
func (rc *RedisClient) Invalidate(ctx context.Context, keys ...string) error {
	if rc == nil || len(keys) == 0 {
		return nil
	}
	if err := rc.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate Redis keys %v: %w", keys, err)
	}
	return nil
}
