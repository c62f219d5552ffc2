package numbering

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const sequenceKeyPrefix = "docnum:"

// RedisSequencer keeps one INCR counter per prefix, so numbers stay unique
// across every process sharing the Redis database.
type RedisSequencer struct {
	client *redis.Client
	// Start is added to the counter so fresh deployments do not issue INV-1.
	Start int64
}

// NewRedisSequencer returns a sequencer whose numbers begin at 1001.
func NewRedisSequencer(client *redis.Client) *RedisSequencer {
	return &RedisSequencer{client: client, Start: 1000}
}

func (s *RedisSequencer) Next(ctx context.Context, prefix string) (string, error) {
	n, err := s.client.Incr(ctx, sequenceKeyPrefix+prefix).Result()
	if err != nil {
		return "", fmt.Errorf("failed to allocate %s number: %w", prefix, err)
	}
	return format(prefix, s.Start+n), nil
}
