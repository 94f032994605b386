package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/chalkdeck/chalk/pkg/adapters/redis"
	"github.com/chalkdeck/chalk/pkg/domain"
	"github.com/chalkdeck/chalk/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunCursorStoreContract(t, store)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "talk", domain.NewState("talk")))

	mr.FastForward(2 * time.Second)

	_, err := store.Load(ctx, "talk")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// The ZSET index prunes lazily against wall-clock time, so the
	// stale member may linger here; List must still succeed.
	_, err = store.List(ctx)
	require.NoError(t, err)
}

func TestRedisStore_CustomPrefixIsolation(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("other:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "talk", domain.NewState("talk")))
	assert.True(t, mr.Exists("other:talk"))
	assert.False(t, mr.Exists("chalk:session:talk"))
}
