package ratelimit

import (
	"sync"
	"time"
)

const pruneThreshold = 4096

// Throttle lets one call per key through every window.
type Throttle struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
	now    func() time.Time
}

func NewThrottle(window time.Duration) *Throttle {
	return &Throttle{
		window: window,
		last:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// Allow reports whether key may run now and, if so, starts a new window for it.
func (t *Throttle) Allow(key string) bool {
	if t == nil || t.window <= 0 {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if prev, ok := t.last[key]; ok && now.Sub(prev) < t.window {
		return false
	}
	t.last[key] = now

	if len(t.last) > pruneThreshold {
		for k, at := range t.last {
			if now.Sub(at) >= t.window {
				delete(t.last, k)
			}
		}
	}
	return true
}
