package service

import (
	"sync"
	"time"
)

// Ticker invokes a registered callback at a fixed interval so observers
// can re-read current calculations. It never touches the state machine
// itself; the composing application owns both and wires them together.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	callback func()
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewTicker creates a stopped ticker. Intervals of zero or less default
// to one second.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// SetCallback registers the function invoked on each tick. The callback
// runs on the ticker's own goroutine; callers marshal to a UI thread
// themselves if they need to.
func (t *Ticker) SetCallback(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.callback = fn
}

// Start launches the ticking loop. Starting a running ticker is a no-op.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.stopCh = make(chan struct{})
	t.doneCh = make(chan struct{})
	go t.run(t.stopCh, t.doneCh)
}

// Stop halts the loop and blocks until the ticking goroutine has
// terminated: once Stop returns, no further callback will run, so it is
// safe to dispose whatever the callback reads. Stopping a stopped
// ticker is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	stopCh, doneCh := t.stopCh, t.doneCh
	t.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// Running reports whether the loop is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Ticker) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			t.mu.Lock()
			fn := t.callback
			t.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}
}
