package ratelimit

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottle_Allow(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	th := NewThrottle(time.Second)
	th.now = func() time.Time { return now }

	assert.True(t, th.Allow("a"))
	assert.False(t, th.Allow("a"))
	assert.True(t, th.Allow("b"), "keys are independent")

	now = now.Add(999 * time.Millisecond)
	assert.False(t, th.Allow("a"))

	now = now.Add(time.Millisecond)
	assert.True(t, th.Allow("a"))
}

func TestThrottle_ZeroWindowAndNil(t *testing.T) {
	th := NewThrottle(0)
	assert.True(t, th.Allow("a"))
	assert.True(t, th.Allow("a"))

	var nilThrottle *Throttle
	assert.True(t, nilThrottle.Allow("a"))
}

func TestThrottle_Prunes(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	th := NewThrottle(time.Second)
	th.now = func() time.Time { return now }

	for i := 0; i <= pruneThreshold; i++ {
		th.Allow(time.Duration(i).String())
	}
	now = now.Add(2 * time.Second)
	th.Allow("fresh")

	assert.Len(t, th.last, 1)
}

func TestDebouncer_CoalescesTriggers(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Stop(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(10 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, calls.Load())
}
