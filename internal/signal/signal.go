// Package signal carries the "something changed, reload" notifications the
// dashboard polls. Each topic is a counter that only ever grows; a client
// compares the value it last saw with the current one.
package signal

import (
	"context"
	"sync"
)

// Topic names a family of changes.
type Topic string

const (
	TopicBookmarks Topic = "bookmarks" // a click was tracked
	TopicTasks     Topic = "tasks"     // a task was created, changed or deleted
)

// Topics lists every known topic, in display order.
var Topics = []Topic{TopicBookmarks, TopicTasks}

// Hub publishes and reads change counters.
type Hub interface {
	// Bump increments topic and returns its new value.
	Bump(ctx context.Context, topic Topic) (int64, error)
	// Snapshot returns the current value of every known topic.
	Snapshot(ctx context.Context) (map[Topic]int64, error)
}

// Memory is a process-local Hub used when Redis is not configured.
type Memory struct {
	mu       sync.RWMutex
	counters map[Topic]int64
}

func NewMemory() *Memory {
	return &Memory{counters: make(map[Topic]int64, len(Topics))}
}

func (m *Memory) Bump(_ context.Context, topic Topic) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[topic]++
	return m.counters[topic], nil
}

func (m *Memory) Snapshot(_ context.Context) (map[Topic]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[Topic]int64, len(Topics))
	for _, t := range Topics {
		out[t] = m.counters[t]
	}
	return out, nil
}
