// Package notify delivers picked colors to an external consumer without
// letting a slow consumer hold up the picker.
package notify

import (
	"context"
	"sync"

	"github.com/jsvensson/chroma/internal/color"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("chroma.notify")

// Notifier calls fn on its own goroutine with the most recently published
// color. Colors published while fn is still running replace each other, so
// only the latest one is delivered next. A color equal to the last delivered
// one is not delivered again.
type Notifier struct {
	fn func(color.Color)

	mu         sync.Mutex
	pending    color.Color
	hasPending bool
	last       color.Color
	busy       bool
	idle       chan struct{} // closed while nothing is pending or running
	closed     bool

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

// New starts a Notifier. initial counts as already delivered.
func New(initial color.Color, fn func(color.Color)) *Notifier {
	idle := make(chan struct{})
	close(idle)
	n := &Notifier{
		fn:   fn,
		last: initial,
		idle: idle,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// Publish hands c to the consumer. It never blocks.
func (n *Notifier) Publish(c color.Color) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	if n.hasPending {
		log.Debugf("coalescing %s into %s", n.pending, c)
	} else if !n.busy {
		n.idle = make(chan struct{})
	}
	n.pending, n.hasPending = c, true
	n.mu.Unlock()

	select {
	case n.wake <- struct{}{}:
	default:
	}
}

// Flush waits until the latest published color has been delivered.
func (n *Notifier) Flush(ctx context.Context) error {
	n.mu.Lock()
	idle := n.idle
	n.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close delivers anything still pending and stops the Notifier. Publish
// calls after Close are dropped.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for {
		select {
		case <-n.wake:
			n.drain()
		case <-n.done:
			n.drain()
			return
		}
	}
}

func (n *Notifier) drain() {
	for {
		n.mu.Lock()
		if !n.hasPending {
			if n.busy {
				n.busy = false
				close(n.idle)
			}
			n.mu.Unlock()
			return
		}
		c := n.pending
		n.hasPending = false
		repeat := c == n.last
		n.last = c
		n.busy = true
		n.mu.Unlock()

		if !repeat {
			n.fn(c)
		}
	}
}
