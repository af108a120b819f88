package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/keepdash/internal/signal"
)

// Store keeps change signal counters in Redis so every keepdash instance
// behind the same Redis sees the same values.
type Store struct {
	client *redis.Client
}

var _ signal.Hub = (*Store)(nil)

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Bump increments the counter of a topic
func (s *Store) Bump(ctx context.Context, topic signal.Topic) (int64, error) {
	v, err := s.client.Incr(ctx, SignalKey(topic)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to bump signal %s: %w", topic, err)
	}
	return v, nil
}

// Snapshot reads every known topic in a single round trip. Missing keys count as zero.
func (s *Store) Snapshot(ctx context.Context) (map[signal.Topic]int64, error) {
	keys := make([]string, len(signal.Topics))
	for i, t := range signal.Topics {
		keys[i] = SignalKey(t)
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read signals: %w", err)
	}

	out := make(map[signal.Topic]int64, len(keys))
	for i, raw := range vals {
		topic := signal.Topics[i]
		str, ok := raw.(string)
		if !ok {
			out[topic] = 0
			continue
		}
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter for signal %s: %w", topic, err)
		}
		out[topic] = n
	}
	return out, nil
}

// Ping checks the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
