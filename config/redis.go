package config

import (
	"pictocat/services/redis"

	"go.uber.org/zap"
)

// Connect to Redis. An empty REDIS_URL disables the cache and returns nil.
func Connect_redis(settings Settings, log *zap.Logger) (*redis.RedisClient, error) {
	if settings.RedisURL == "" {
		log.Warn("REDIS_URL not set, running without cache")
		return nil, nil
	}
	redisClient, err := redis.InitRedis(settings.RedisURL, 0)
	if err != nil {
		return nil, err
	}
	log.Info("Redis connection established")
	return redisClient, nil
}
