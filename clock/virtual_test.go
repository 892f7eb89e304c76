package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestVirtualAfterFiresOnce(t *testing.T) {
	v := NewVirtual()
	fired := 0
	v.After(300*time.Millisecond, func() { fired++ })

	v.Advance(299 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early: %d", fired)
	}
	v.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	v.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("one-shot fired again: %d", fired)
	}
	if v.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", v.Pending())
	}
}

func TestVirtualEveryAndStop(t *testing.T) {
	v := NewVirtual()
	ticks := 0
	h := v.Every(time.Second/60, func() { ticks++ })

	v.Advance(time.Second)
	if ticks != 60 {
		t.Fatalf("ticks after 1s = %d, want 60", ticks)
	}
	if !h.Stop() {
		t.Fatalf("Stop on running ticker should report pending")
	}
	if h.Stop() {
		t.Fatalf("second Stop should report false")
	}
	v.Advance(time.Second)
	if ticks != 60 {
		t.Fatalf("ticker ran after Stop: %d", ticks)
	}
}

func TestVirtualOrdering(t *testing.T) {
	v := NewVirtual()
	var got []string
	v.After(20*time.Millisecond, func() { got = append(got, "b") })
	v.After(10*time.Millisecond, func() { got = append(got, "a") })
	v.After(20*time.Millisecond, func() { got = append(got, "c") })
	v.Advance(time.Second)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestVirtualCallbackSchedulesAndStops(t *testing.T) {
	v := NewVirtual()
	var at []time.Duration
	var h Handle
	h = v.Every(16*time.Millisecond, func() {
		at = append(at, v.Now())
		if len(at) == 3 {
			h.Stop()
			v.After(100*time.Millisecond, func() { at = append(at, v.Now()) })
		}
	})
	v.Advance(time.Second)

	want := []time.Duration{16 * time.Millisecond, 32 * time.Millisecond, 48 * time.Millisecond, 148 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("got %v, want %v", at, want)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Fatalf("got %v, want %v", at, want)
		}
	}
	if v.Now() != time.Second {
		t.Fatalf("Now = %v, want 1s", v.Now())
	}
}

func TestVirtualEveryRejectsZeroInterval(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNonPositiveInterval) {
			t.Fatalf("recover = %v, want ErrNonPositiveInterval", r)
		}
	}()
	NewVirtual().Every(0, func() {})
}

func TestStopHandleNil(t *testing.T) {
	if StopHandle(nil) != nil {
		t.Fatalf("StopHandle(nil) should return nil")
	}
}

func TestLoopRunsPostsAndTimers(t *testing.T) {
	l := NewLoop(time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan struct{})
	if err := l.Post(ctx, func() {
		l.After(5*time.Millisecond, func() { close(done) })
	}); err != nil {
		t.Fatalf("post: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("timer never fired")
	}
	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
}
