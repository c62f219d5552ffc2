package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func setHealthStatus(s HealthStatus) {
	mu.Lock()
	currentHealth = s
	mu.Unlock()
}

// CheckHealth pings the configured backends once and stores the result.
// A nil mongo client (in-memory store) counts as healthy.
func CheckHealth(ctx context.Context, mongoClient *mongo.Client, redisClient *redis.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{Mongo: true, CheckedAt: time.Now()}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	if redisClient != nil {
		ok := redisClient.Ping(ctx).Err() == nil
		status.Redis = &ok
	}
	setHealthStatus(status)
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, mongoClient *mongo.Client, redisClient *redis.Client) {
	CheckHealth(ctx, mongoClient, redisClient)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s := CheckHealth(ctx, mongoClient, redisClient)
				if !s.Mongo || (s.Redis != nil && !*s.Redis) {
					GetLogger().Warn("health check failed", zap.Bool("mongo", s.Mongo), zap.Any("redis", s.Redis))
				}
			}
		}
	}()
}
