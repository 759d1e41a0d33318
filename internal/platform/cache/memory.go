package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries is maximal number of entries of memory cache.
const DefaultMaxEntries = 10_000

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryOption configures Memory.
type MemoryOption func(*Memory)

// WithClock sets Memory's custom Clock.
func WithClock(c Clock) MemoryOption {
	return func(m *Memory) {
		m.clock = c
	}
}

// WithMaxEntries sets maximal number of entries kept by Memory.
func WithMaxEntries(n int) MemoryOption {
	return func(m *Memory) {
		if n > 0 {
			m.maxEntries = n
		}
	}
}

// Memory is in-process Cache with bounded number of entries.
// When full, expired entries are evicted first, then the ones closest to expiry.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]entry
	maxEntries int
	clock      Clock
}

// NewMemory returns new Memory.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		entries:    make(map[string]entry),
		maxEntries: DefaultMaxEntries,
		clock:      systemClock{},
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Get returns value cached under key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	if !m.clock.Now().Before(e.expiresAt) {
		delete(m.entries, key)
		return nil, ErrMiss
	}

	return e.value, nil
}

// Set caches value under key for ttl.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if _, ok := m.entries[key]; !ok && len(m.entries) >= m.maxEntries {
		m.evict(now)
	}

	m.entries[key] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: now.Add(ttl),
	}

	return nil
}

// Len returns number of entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

func (m *Memory) evict(now time.Time) {
	for key, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, key)
		}
	}
	if len(m.entries) < m.maxEntries {
		return
	}

	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, e := range m.entries {
		if !found || e.expiresAt.Before(oldest) {
			oldestKey, oldest, found = key, e.expiresAt, true
		}
	}
	delete(m.entries, oldestKey)
}
