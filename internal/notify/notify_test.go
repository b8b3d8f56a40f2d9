package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/chroma/internal/color"
)

type recorder struct {
	mu  sync.Mutex
	got []color.Color
}

func (r *recorder) record(c color.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, c)
}

func (r *recorder) colors() []color.Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]color.Color(nil), r.got...)
}

func flush(t *testing.T, n *Notifier) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.Flush(ctx); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}
}

func TestLatestWins(t *testing.T) {
	first := color.Color{R: 1}
	started := make(chan struct{})
	gate := make(chan struct{})

	rec := &recorder{}
	n := New(color.Black, func(c color.Color) {
		rec.record(c)
		if c == first {
			close(started)
			<-gate
		}
	})
	defer n.Close()

	n.Publish(first)
	<-started
	for i := 2; i <= 10; i++ {
		n.Publish(color.Color{R: uint8(i)})
	}
	close(gate)
	flush(t, n)

	want := []color.Color{first, {R: 10}}
	if diff := cmp.Diff(want, rec.colors()); diff != "" {
		t.Errorf("delivered colors mismatch (-want +got):\n%s", diff)
	}
}

func TestSkipsRepeats(t *testing.T) {
	rec := &recorder{}
	n := New(color.White, rec.record)
	defer n.Close()

	n.Publish(color.White)
	flush(t, n)
	if got := rec.colors(); len(got) != 0 {
		t.Fatalf("initial color was delivered: %v", got)
	}

	blue := color.Color{B: 255}
	n.Publish(blue)
	flush(t, n)
	n.Publish(blue)
	flush(t, n)

	if diff := cmp.Diff([]color.Color{blue}, rec.colors()); diff != "" {
		t.Errorf("delivered colors mismatch (-want +got):\n%s", diff)
	}
}

func TestFlushHonorsContext(t *testing.T) {
	gate := make(chan struct{})
	n := New(color.Black, func(color.Color) { <-gate })
	defer n.Close()
	defer close(gate)

	n.Publish(color.White)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := n.Flush(ctx); err != context.Canceled {
		t.Errorf("Flush() with canceled context = %v, want %v", err, context.Canceled)
	}
}

func TestCloseDeliversPending(t *testing.T) {
	rec := &recorder{}
	n := New(color.Black, rec.record)

	n.Publish(color.White)
	n.Close()
	n.Publish(color.Color{R: 9})

	if diff := cmp.Diff([]color.Color{color.White}, rec.colors()); diff != "" {
		t.Errorf("delivered colors mismatch (-want +got):\n%s", diff)
	}
}
