package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/keepdash/internal/signal"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestStoreBump(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	v, err := store.Bump(ctx, signal.TopicBookmarks)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = store.Bump(ctx, signal.TopicBookmarks)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	got, err := mr.Get(SignalKey(signal.TopicBookmarks))
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestStoreSnapshotMissingKeysAreZero(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	_, err := store.Bump(ctx, signal.TopicTasks)
	require.NoError(t, err)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), snap[signal.TopicBookmarks])
	assert.Equal(t, int64(1), snap[signal.TopicTasks])
}

func TestStoreSnapshotRejectsGarbage(t *testing.T) {
	store, mr := setupStore(t)
	require.NoError(t, mr.Set(SignalKey(signal.TopicTasks), "not-a-number"))

	_, err := store.Snapshot(context.Background())
	assert.Error(t, err)
}

func TestStoreBumpFailsWhenRedisIsDown(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()

	_, err := store.Bump(context.Background(), signal.TopicTasks)
	assert.Error(t, err)
}

func TestTopicFromKey(t *testing.T) {
	tests := []struct {
		key    string
		want   signal.Topic
		wantOK bool
	}{
		{key: "keepdash:signal:tasks", want: signal.TopicTasks, wantOK: true},
		{key: "keepdash:signal:", wantOK: false},
		{key: "other:cache:foo", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := TopicFromKey(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
