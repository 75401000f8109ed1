package ratelimit

import (
	"sync"
	"time"
)

// Limiter decide se uma chave pode prosseguir dentro da janela corrente.
type Limiter interface {
	Allow(key string, limit int) bool
}

// InMemoryLimiter implementa janela fixa por processo. Serve de fallback
// quando o Redis não está configurado ou está indisponível.
type InMemoryLimiter struct {
	mu     sync.Mutex
	window time.Duration
	items  map[string]entry
}

type entry struct {
	count   int
	resetAt time.Time
}

// NewInMemory cria o limitador local com a janela informada.
func NewInMemory(window time.Duration) *InMemoryLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &InMemoryLimiter{
		window: window,
		items:  make(map[string]entry),
	}
}

// Allow incrementa o contador da chave e compara com o limite.
func (l *InMemoryLimiter) Allow(key string, limit int) bool {
	if limit <= 0 {
		limit = 1
	}
	now := time.Now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	for k, v := range l.items {
		if now.After(v.resetAt) {
			delete(l.items, k)
		}
	}

	curr, ok := l.items[key]
	if !ok || now.After(curr.resetAt) {
		curr = entry{resetAt: now.Add(l.window)}
	}
	curr.count++
	l.items[key] = curr

	return curr.count <= limit
}
