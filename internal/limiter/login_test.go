package limiter

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func newTestLimiter(t *testing.T) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr, client := newTestRedis(t)
	return NewLoginLimiter(client, config.Limiter{LoginAttempts: 3, LoginWindow: time.Minute}), mr
}

func TestLoginLimiter_BlocksAfterMaxAttempts(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := l.Allow(ctx, "alice")
		require.NoError(t, err)
		require.True(t, allowed, "attempt %d", i)
		require.NoError(t, l.RecordFailure(ctx, "alice"))
	}

	allowed, err := l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = l.Allow(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.RecordFailure(ctx, "alice"))
	}
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"alice"))

	mr.FastForward(time.Minute + time.Second)

	allowed, err := l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLoginLimiter_LaterFailuresDoNotExtendWindow(t *testing.T) {
	l, mr := newTestLimiter(t)
	ctx := context.Background()

	require.NoError(t, l.RecordFailure(ctx, "alice"))
	mr.FastForward(30 * time.Second)
	require.NoError(t, l.RecordFailure(ctx, "alice"))

	assert.Equal(t, 30*time.Second, mr.TTL(keyPrefix+"alice"))
}

func TestLoginLimiter_CounterWithoutTTLGetsWindow(t *testing.T) {
	l, mr := newTestLimiter(t)
	ctx := context.Background()

	// a counter left behind without an expiry
	require.NoError(t, mr.Set(keyPrefix+"alice", "2"))
	require.Zero(t, mr.TTL(keyPrefix+"alice"))

	require.NoError(t, l.RecordFailure(ctx, "alice"))

	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"alice"))
	got, err := mr.Get(keyPrefix + "alice")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	mr.FastForward(time.Minute + time.Second)
	allowed, err := l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLoginLimiter_Reset(t *testing.T) {
	l, mr := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.RecordFailure(ctx, "alice"))
	}
	require.NoError(t, l.Reset(ctx, "alice"))
	assert.False(t, mr.Exists(keyPrefix+"alice"))

	allowed, err := l.Allow(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLoginLimiter_Unavailable(t *testing.T) {
	l, mr := newTestLimiter(t)
	ctx := context.Background()
	mr.Close()

	_, err := l.Allow(ctx, "alice")
	require.ErrorIs(t, err, ErrLimiterUnavailable)
	require.ErrorIs(t, l.RecordFailure(ctx, "alice"), ErrLimiterUnavailable)
	require.ErrorIs(t, l.Reset(ctx, "alice"), ErrLimiterUnavailable)
}

func TestNewRedisClient(t *testing.T) {
	mr, _ := newTestRedis(t)

	addr := mr.Addr()

	client, err := NewRedisClient(context.Background(), config.Redis{Address: addr})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = NewRedisClient(context.Background(), config.Redis{Address: addr})
	require.ErrorIs(t, err, ErrLimiterUnavailable)
}
