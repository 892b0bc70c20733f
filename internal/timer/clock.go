package timer

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the wall clock.
type MonotonicTimeProvider struct{}

func (MonotonicTimeProvider) Now() time.Time { return time.Now() }

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// TickClock is a periodic interval timer with a latched ready flag.
//
// Like the hardware counter it models, the period keeps running while the
// flag is set: missed periods collapse into a single pending tick.
type TickClock struct {
	tp     TimeProvider
	period time.Duration
	next   time.Time
	armed  bool
}

func NewTickClock(tp TimeProvider, period time.Duration) *TickClock {
	if tp == nil {
		tp = MonotonicTimeProvider{}
	}
	return &TickClock{tp: tp, period: period}
}

// Arm restarts the period from now.
func (c *TickClock) Arm() {
	c.next = c.tp.Now().Add(c.period)
	c.armed = true
}

func (c *TickClock) TickReady() bool {
	return c.armed && !c.tp.Now().Before(c.next)
}

// Acknowledge clears the ready flag and schedules the next period boundary.
func (c *TickClock) Acknowledge() {
	if !c.armed {
		return
	}
	now := c.tp.Now()
	for !now.Before(c.next) {
		c.next = c.next.Add(c.period)
	}
}
