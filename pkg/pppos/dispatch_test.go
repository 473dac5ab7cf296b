package pppos

import (
	"sync"
	"testing"
	"time"
)

func TestDirectDispatcherCallsSynchronously(t *testing.T) {
	var got Frame
	d := DirectDispatcher{Handler: func(f Frame) { got = f }}
	d.Dispatch(Frame{Payload: []byte{0x00, 0x21, 1, 2}})
	if !bytesEqual(got.Data(), []byte{1, 2}) {
		t.Fatalf("handler did not run synchronously: got %+v", got)
	}
}

func TestDirectDispatcherNilHandler(t *testing.T) {
	d := DirectDispatcher{}
	d.Dispatch(Frame{Payload: []byte{0x00, 0x21}}) // must not panic
}

func TestQueuedDispatcherDeliversOffCallerGoroutine(t *testing.T) {
	var (
		mu  sync.Mutex
		got []Frame
	)
	done := make(chan struct{})

	d := NewQueuedDispatcher(4, func(f Frame) {
		mu.Lock()
		got = append(got, f)
		if len(got) == 2 {
			close(done)
		}
		mu.Unlock()
	})
	defer d.Close()

	d.Dispatch(Frame{Payload: []byte{0x00, 0x21, 1}})
	d.Dispatch(Frame{Payload: []byte{0x00, 0x21, 2}})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for queued frames")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("got %d frames, want 2", len(got))
	}
}

func TestQueuedDispatcherCloseStopsDraining(t *testing.T) {
	d := NewQueuedDispatcher(1, func(Frame) {})
	d.Close()
	// After Close, Dispatch must not block forever even though nothing
	// drains the queue anymore.
	done := make(chan struct{})
	go func() {
		d.Dispatch(Frame{})
		d.Dispatch(Frame{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked after Close")
	}
}
