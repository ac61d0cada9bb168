package cache

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, ttl time.Duration) (*mr.Miniredis, *ListingCache) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return m, NewListingCache(client, ttl, zerolog.New(io.Discard))
}

func TestRemember_CachesUntilExpiry(t *testing.T) {
	m, c := newCache(t, time.Minute)
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	ctx := context.Background()
	got, err := Remember(ctx, c, "k", load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = Remember(ctx, c, "k", load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, calls)

	m.FastForward(2 * time.Minute)
	_, err = Remember(ctx, c, "k", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRemember_LoadErrorNotCached(t *testing.T) {
	m, c := newCache(t, time.Minute)
	boom := errors.New("store down")

	_, err := Remember(context.Background(), c, "k", func(context.Context) ([]string, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, m.Exists("k"))
}

func TestRemember_RedisDownFallsThrough(t *testing.T) {
	m, c := newCache(t, time.Minute)
	m.Close()

	got, err := Remember(context.Background(), c, "k", func(context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, got)
}

func TestRemember_CorruptEntryReloaded(t *testing.T) {
	m, c := newCache(t, time.Minute)
	require.NoError(t, m.Set("k", "{not json"))

	got, err := Remember(context.Background(), c, "k", func(context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, got)
}

func TestRemember_DisabledAlwaysLoads(t *testing.T) {
	var c *ListingCache
	assert.False(t, c.Enabled())

	calls := 0
	for i := 0; i < 2; i++ {
		_, err := Remember(context.Background(), c, "k", func(context.Context) (int, error) {
			calls++
			return 1, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)

	zeroTTL := NewListingCache(redis.NewClient(&redis.Options{}), 0, zerolog.Nop())
	assert.False(t, zeroTTL.Enabled())
}
