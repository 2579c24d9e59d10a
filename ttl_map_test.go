package gotopic

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestTTLMap(ttl time.Duration) (*ttlMap[string, int], *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	return newTTLMapWithClock[string, int](4, ttl, clock.Now), clock
}

func TestTTLMap_PutOnlyOncePerWindow(t *testing.T) {
	m, clock := newTestTTLMap(time.Hour)
	defer m.Close()

	assert.True(t, m.Put("a", 1))
	assert.False(t, m.Put("a", 2))

	v, found := m.Get("a")
	assert.True(t, found)
	assert.Equal(t, 1, v)

	clock.Advance(time.Hour)

	_, found = m.Get("a")
	assert.False(t, found)

	assert.True(t, m.Put("a", 3))

	v, found = m.Get("a")
	assert.True(t, found)
	assert.Equal(t, 3, v)
}

func TestTTLMap_Delete(t *testing.T) {
	m, _ := newTestTTLMap(time.Hour)
	defer m.Close()

	m.Put("a", 1)
	m.Delete("a")

	assert.Equal(t, 0, m.Len())
	assert.True(t, m.Put("a", 1))
}

func TestTTLMap_SweepRemovesExpiredEntries(t *testing.T) {
	m := newTTLMap[string, int](4, 30*time.Millisecond)
	defer m.Close()

	m.Put("a", 1)

	assert.Eventually(t, func() bool {
		return m.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestTTLMap_CloseTwice(t *testing.T) {
	m, _ := newTestTTLMap(time.Hour)

	assert.NotPanics(t, func() {
		m.Close()
		m.Close()
	})
}
