package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicker_InvokesCallback(t *testing.T) {
	var ticks atomic.Int64
	ticker := NewTicker(5 * time.Millisecond)
	ticker.SetCallback(func() { ticks.Add(1) })

	ticker.Start()
	defer ticker.Stop()

	require.Eventually(t, func() bool { return ticks.Load() >= 3 },
		time.Second, time.Millisecond, "callback should fire repeatedly")
}

func TestTicker_StopWaitsForLoopExit(t *testing.T) {
	var ticks atomic.Int64
	ticker := NewTicker(time.Millisecond)
	ticker.SetCallback(func() { ticks.Add(1) })

	ticker.Start()
	require.Eventually(t, func() bool { return ticks.Load() > 0 }, time.Second, time.Millisecond)

	ticker.Stop()
	assert.False(t, ticker.Running())

	// No callback may run after Stop returns.
	settled := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, ticks.Load(), "no callbacks after Stop returns")
}

func TestTicker_StartStopIdempotent(t *testing.T) {
	ticker := NewTicker(time.Millisecond)
	ticker.Start()
	ticker.Start()
	assert.True(t, ticker.Running())
	ticker.Stop()
	ticker.Stop()
	assert.False(t, ticker.Running())

	// Restart after stop works.
	var ticks atomic.Int64
	ticker.SetCallback(func() { ticks.Add(1) })
	ticker.Start()
	require.Eventually(t, func() bool { return ticks.Load() > 0 }, time.Second, time.Millisecond)
	ticker.Stop()
}

func TestTicker_DefaultsInterval(t *testing.T) {
	ticker := NewTicker(0)
	assert.Equal(t, time.Second, ticker.interval)
}
