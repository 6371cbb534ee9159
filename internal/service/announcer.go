package service

import (
	"context"
	"sync"
	"time"
)

// Announcer carries called-patient names from the desk to the waiting room
// display. It is an in-process FIFO: Announce never blocks the caller, each
// name is delivered to exactly one Next, and names queued while no display
// is attached are retained until consumed.
type Announcer struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []string
}

func NewAnnouncer() *Announcer {
	a := &Announcer{}
	a.cond = sync.NewCond(&a.mu)
	return a
}

// Announce enqueues a patient name for the display channel.
func (a *Announcer) Announce(name string) {
	a.mu.Lock()
	a.queue = append(a.queue, name)
	a.mu.Unlock()
	a.cond.Signal()
}

// Next returns the oldest pending name. When the queue stays empty for
// timeout, or ctx ends, it returns ok=false so the caller can emit a
// keep-alive and come back.
func (a *Announcer) Next(ctx context.Context, timeout time.Duration) (string, bool) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	done := make(chan struct{})
	defer close(done)

	// A Cond cannot wait on a channel, so a helper goroutine turns the
	// timeout and context into a wakeup Broadcast.
	expired := false
	go func() {
		select {
		case <-deadline.C:
		case <-ctx.Done():
		case <-done:
			return
		}
		a.mu.Lock()
		expired = true
		a.mu.Unlock()
		a.cond.Broadcast()
	}()

	a.mu.Lock()
	defer a.mu.Unlock()
	for len(a.queue) == 0 && !expired {
		a.cond.Wait()
	}
	if len(a.queue) == 0 {
		return "", false
	}

	name := a.queue[0]
	a.queue = a.queue[1:]
	return name, true
}

// Pending reports the number of names waiting for a display.
func (a *Announcer) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queue)
}
