package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var windowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter implementa janela fixa compartilhada entre instâncias do
// gateway. Falhas no Redis degradam para o limitador em memória.
type RedisLimiter struct {
	client   *redis.Client
	window   time.Duration
	prefix   string
	fallback *InMemoryLimiter
}

// NewRedis cria o limitador distribuído.
func NewRedis(client *redis.Client, window time.Duration) *RedisLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RedisLimiter{
		client:   client,
		window:   window,
		prefix:   "rl:",
		fallback: NewInMemory(window),
	}
}

// Allow incrementa o contador da chave no Redis e compara com o limite.
func (l *RedisLimiter) Allow(key string, limit int) bool {
	if limit <= 0 {
		limit = 1
	}
	if l.client == nil {
		return l.fallback.Allow(key, limit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	count, err := windowScript.Run(ctx, l.client, []string{l.prefix + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return l.fallback.Allow(key, limit)
	}

	return int(count) <= limit
}
