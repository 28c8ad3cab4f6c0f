// Package ratelimit implements a Redis backed fixed window request limiter.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrInvalidConfig is returned by NewLimiter for a non-positive limit or window.
var ErrInvalidConfig = errors.New("ratelimit: limit and window must be positive")

// windowScript increments the counter and starts the window on the first hit.
// It returns the new count and the milliseconds left in the window.
var windowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {count, ttl}
`)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter allows at most limit hits per key within each window.
type Limiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewLimiter(client *redis.Client, prefix string, limit int, window time.Duration) (*Limiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, ErrInvalidConfig
	}
	return &Limiter{client: client, prefix: prefix, limit: limit, window: window}, nil
}

// Allow records a hit for key. On Redis errors the request is denied and the error returned.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	res, err := windowScript.Run(ctx, l.client, []string{l.key(key)}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: %w", err)
	}
	if len(res) != 2 {
		return Decision{}, fmt.Errorf("ratelimit: unexpected reply %v", res)
	}

	count, ttl := res[0], time.Duration(res[1])*time.Millisecond
	if ttl < 0 {
		ttl = l.window
	}
	if count > int64(l.limit) {
		return Decision{Allowed: false, RetryAfter: ttl}, nil
	}
	return Decision{Allowed: true, Remaining: l.limit - int(count)}, nil
}

// Limit is the number of hits allowed per window.
func (l *Limiter) Limit() int { return l.limit }

func (l *Limiter) key(k string) string {
	return l.prefix + ":" + k
}
