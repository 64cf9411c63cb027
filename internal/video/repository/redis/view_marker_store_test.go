package redis_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	videoredis "github.com/debugg-er/zootube-api-sub000/internal/video/repository/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*videoredis.ViewMarkerStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return videoredis.NewViewMarkerStore(client), mr
}

func TestMarkIfAbsent(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	fresh, err := store.MarkIfAbsent(ctx, "fp", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, 30*time.Second, mr.TTL("view:fp"))

	fresh, err = store.MarkIfAbsent(ctx, "fp", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, fresh)

	mr.FastForward(31 * time.Second)

	fresh, err = store.MarkIfAbsent(ctx, "fp", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestMarkIfAbsent_Concurrent(t *testing.T) {
	store, _ := newStore(t)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if fresh, err := store.MarkIfAbsent(context.Background(), "same", time.Minute); err == nil && fresh {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}

func TestMarkIfAbsent_Unavailable(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	_, err := store.MarkIfAbsent(context.Background(), "fp", time.Second)
	assert.Error(t, err)
}
