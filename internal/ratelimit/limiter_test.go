package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int, window time.Duration) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l, err := NewLimiter(client, "test:ratelimit", limit, window)
	require.NoError(t, err)
	return l, mr
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := newLimiter(t, 2, time.Minute)
	ctx := context.Background()

	d, err := l.Allow(ctx, "ip-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)

	d, err = l.Allow(ctx, "ip-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	d, err = l.Allow(ctx, "ip-1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)

	d, err = l.Allow(ctx, "ip-2")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "keys are limited independently")
}

func TestLimiter_WindowResets(t *testing.T) {
	l, mr := newLimiter(t, 1, time.Second)
	ctx := context.Background()

	d, err := l.Allow(ctx, "ip-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = l.Allow(ctx, "ip-1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	mr.FastForward(2 * time.Second)

	d, err = l.Allow(ctx, "ip-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimiter_FailsClosed(t *testing.T) {
	l, mr := newLimiter(t, 1, time.Second)
	mr.Close()

	d, err := l.Allow(context.Background(), "ip-1")
	assert.Error(t, err)
	assert.False(t, d.Allowed)
}

func TestNewLimiter_InvalidConfig(t *testing.T) {
	_, err := NewLimiter(nil, "p", 0, time.Second)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewLimiter(nil, "p", 1, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
