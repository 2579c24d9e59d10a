package gotopic

import (
	"sync"
	"time"
)

type ttlMapValue[V any] struct {
	value     V
	createdAt time.Time
}

// ttlMap is a concurrent map whose entries expire after maxTTL.
// Expired entries are ignored straight away and swept in the background until Close is called.
type ttlMap[K comparable, V any] struct {
	m      map[K]ttlMapValue[V]
	l      sync.Mutex
	maxTTL time.Duration
	now    func() time.Time
	done   chan struct{}
	once   sync.Once
}

func newTTLMap[K comparable, V any](ln uint64, maxTTL time.Duration) *ttlMap[K, V] {
	return newTTLMapWithClock[K, V](ln, maxTTL, time.Now)
}

func newTTLMapWithClock[K comparable, V any](ln uint64, maxTTL time.Duration, now func() time.Time) *ttlMap[K, V] {
	m := &ttlMap[K, V]{
		m:      make(map[K]ttlMapValue[V], ln),
		maxTTL: maxTTL,
		now:    now,
		done:   make(chan struct{}),
	}

	go m.sweep()

	return m
}

func (m *ttlMap[K, V]) sweep() {
	const tickFraction = 3

	interval := m.maxTTL / tickFraction
	if interval <= 0 {
		interval = m.maxTTL
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.l.Lock()
			now := m.now()
			for k, v := range m.m {
				if now.Sub(v.createdAt) >= m.maxTTL {
					delete(m.m, k)
				}
			}
			m.l.Unlock()
		}
	}
}

func (m *ttlMap[K, V]) Len() int {
	m.l.Lock()

	defer m.l.Unlock()

	return len(m.m)
}

// Put stores the value if the key is absent or expired and reports whether it did.
func (m *ttlMap[K, V]) Put(k K, v V) bool {
	m.l.Lock()

	defer m.l.Unlock()

	now := m.now()

	if existing, ok := m.m[k]; ok && now.Sub(existing.createdAt) < m.maxTTL {
		return false
	}

	m.m[k] = ttlMapValue[V]{value: v, createdAt: now}

	return true
}

func (m *ttlMap[K, V]) Get(k K) (V, bool) {
	m.l.Lock()

	defer m.l.Unlock()

	v, found := m.m[k]
	if found && m.now().Sub(v.createdAt) >= m.maxTTL {
		var zero V

		return zero, false
	}

	return v.value, found
}

func (m *ttlMap[K, V]) Delete(k K) {
	m.l.Lock()

	defer m.l.Unlock()

	delete(m.m, k)
}

// Close stops the background sweep. It is safe to call more than once.
func (m *ttlMap[K, V]) Close() {
	m.once.Do(func() {
		close(m.done)
	})
}
