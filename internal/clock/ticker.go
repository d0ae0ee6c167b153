package clock

import (
	"context"
	"sync"
	"time"
)

// Ticker runs a callback on an interval until stopped. One Ticker owns at
// most one running loop: Start stops the previous loop first. The callback
// must not call Start or Stop on its own Ticker.
type Ticker struct {
	ops    sync.Mutex // serializes Start and Stop
	mu     sync.Mutex // guards cancel and done
	cancel context.CancelFunc
	done   chan struct{}
}

// Start runs fn every interval until ctx ends or Stop is called.
func (t *Ticker) Start(ctx context.Context, interval time.Duration, fn func(time.Time)) {
	t.ops.Lock()
	defer t.ops.Unlock()
	t.stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	t.mu.Lock()
	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	go func() {
		defer close(done)
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-tk.C:
				// A tick can race with cancellation; drop it.
				if ctx.Err() != nil {
					return
				}
				fn(now)
			}
		}
	}()
}

// Stop cancels the running loop and waits for it to exit.
func (t *Ticker) Stop() {
	t.ops.Lock()
	defer t.ops.Unlock()
	t.stop()
}

func (t *Ticker) stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether a loop is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Done returns a channel closed when the current loop exits, or nil.
func (t *Ticker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}
