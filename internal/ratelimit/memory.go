package ratelimit

import (
	"context"
	"sync"
	"time"
)

type MemoryLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo

	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

func NewMemoryLimiter(maxAttempts int, window time.Duration, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}
	return &MemoryLimiter{
		attempts:    make(map[string]*attemptInfo),
		maxAttempts: maxAttempts,
		window:      window,
		now:         now,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, ok := m.attempts[key]
	if !ok {
		return true, nil
	}

	// Reset if window expired
	if m.now().Sub(info.firstAt) > m.window {
		delete(m.attempts, key)
		return true, nil
	}

	return info.count < m.maxAttempts, nil
}

func (m *MemoryLimiter) Fail(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.prune(now)

	info, ok := m.attempts[key]
	if !ok {
		m.attempts[key] = &attemptInfo{count: 1, firstAt: now}
		return nil
	}
	info.count++
	return nil
}

func (m *MemoryLimiter) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.attempts, key)
	return nil
}

// prune se llama con el mutex tomado.
func (m *MemoryLimiter) prune(now time.Time) {
	for k, info := range m.attempts {
		if now.Sub(info.firstAt) > m.window {
			delete(m.attempts, k)
		}
	}
}

var _ Limiter = (*MemoryLimiter)(nil)
