package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedisServer connects the redis client used for filtered-list caching.
// The service still works without redis; callers treat a nil client as
// cache-off.
func InitRedisServer(ctx context.Context) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
		Password: "",
		DB:       0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		Logger.Warn("Redis unreachable, list caching disabled", zap.Error(err))
		return nil
	}

	return client
}
