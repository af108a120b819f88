package redis

import (
	"strings"

	"github.com/MrSnakeDoc/keepdash/internal/signal"
)

const (
	// KeyPrefixSignal is the prefix for change signal counters
	KeyPrefixSignal = "keepdash:signal:"
)

// SignalKey returns the Redis key holding the counter of a topic
func SignalKey(topic signal.Topic) string {
	return KeyPrefixSignal + string(topic)
}

// TopicFromKey extracts the topic from a signal key, false when key is foreign
func TopicFromKey(key string) (signal.Topic, bool) {
	if !strings.HasPrefix(key, KeyPrefixSignal) || len(key) == len(KeyPrefixSignal) {
		return "", false
	}
	return signal.Topic(key[len(KeyPrefixSignal):]), true
}
