package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// AskRateLimiter bounds how often one client may hit the ask endpoint.
type AskRateLimiter interface {
	Allow(key string) bool
}

const redisAskAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisAskRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisAskRateLimiter allows max requests per key within window. A nil
// client yields a nil limiter, which callers treat as "no limit".
func NewRedisAskRateLimiter(client *redis.Client, window time.Duration, max int) AskRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisAskRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "ask:rl:",
	}
}

func (l *redisAskRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisAskAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		// Redis trouble must not lock users out of the ask feature.
		return true
	}
	return count <= l.max
}
