package utils

import (
	"context"
	"fmt"
	"time"

	"invoicely/config"

	"github.com/go-redis/redis/v8"
)

// InitSequenceCache connects the Redis client used for document numbering.
// It returns nil, nil when REDIS_ADDR is empty.
func InitSequenceCache(cfg config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisSequenceDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (sequence): %w", err)
	}
	return client, nil
}
