// Package ratelimit counts attempts per key in fixed Redis windows.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the counter and starts the window on the
// first hit, atomically. It returns {count, ttl_ms}.
var fixedWindowScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

// Result describes one counted attempt.
type Result struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
	Limit     int
}

// Limiter allows at most limit attempts per key in each window.
type Limiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// New returns a limiter whose keys look like "ratelimit:<scope>:<key>".
func New(client *redis.Client, scope string, limit int, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		prefix: "ratelimit:" + scope + ":",
		limit:  limit,
		window: window,
	}
}

// Allow counts one attempt for key. Attempts over the limit are still
// counted, so a client that keeps hammering stays blocked until the window
// ends.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	raw, err := fixedWindowScript.Run(ctx, l.client, []string{l.prefix + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit check failed: %w", err)
	}

	values, ok := raw.([]any)
	if !ok || len(values) != 2 {
		return Result{}, fmt.Errorf("unexpected rate limit result %v", raw)
	}

	count, okCount := values[0].(int64)
	ttl, okTTL := values[1].(int64)
	if !okCount || !okTTL {
		return Result{}, fmt.Errorf("unexpected rate limit result %v", raw)
	}

	return Result{
		Allowed:   count <= int64(l.limit),
		Remaining: max(l.limit-int(count), 0),
		ResetIn:   time.Duration(ttl) * time.Millisecond,
		Limit:     l.limit,
	}, nil
}

// Reset clears the counter for key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}
