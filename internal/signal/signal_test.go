package signal

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryBumpAndSnapshot(t *testing.T) {
	ctx := context.Background()
	hub := NewMemory()

	snap, err := hub.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	for _, topic := range Topics {
		if snap[topic] != 0 {
			t.Errorf("fresh counter %s = %d, want 0", topic, snap[topic])
		}
	}

	if v, _ := hub.Bump(ctx, TopicTasks); v != 1 {
		t.Errorf("first Bump() = %d, want 1", v)
	}
	if v, _ := hub.Bump(ctx, TopicTasks); v != 2 {
		t.Errorf("second Bump() = %d, want 2", v)
	}

	snap, _ = hub.Snapshot(ctx)
	if snap[TopicTasks] != 2 || snap[TopicBookmarks] != 0 {
		t.Errorf("Snapshot() = %v", snap)
	}
}

func TestMemoryConcurrentBumps(t *testing.T) {
	ctx := context.Background()
	hub := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = hub.Bump(ctx, TopicBookmarks)
		}()
	}
	wg.Wait()

	snap, _ := hub.Snapshot(ctx)
	if snap[TopicBookmarks] != 50 {
		t.Errorf("counter = %d, want 50", snap[TopicBookmarks])
	}
}
