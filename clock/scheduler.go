// Package clock provides the scheduling surface the choreography runs on:
// recurring and one-shot callbacks that are all delivered on one serialized
// execution context.
package clock

import (
	"errors"
	"time"
)

var ErrNonPositiveInterval = errors.New("clock: interval must be positive")

// Scheduler runs callbacks on a single logical thread. Implementations must
// never run two callbacks concurrently.
type Scheduler interface {
	// Every runs fn repeatedly, first after interval, until the handle is stopped.
	Every(interval time.Duration, fn func()) Handle
	// After runs fn once after delay.
	After(delay time.Duration, fn func()) Handle
}

// Handle controls a scheduled callback.
type Handle interface {
	// Stop prevents further runs. It reports whether the callback was still
	// pending. Stopping twice is harmless.
	Stop() bool
}

// StopHandle stops h if it is non-nil and returns nil so callers can clear
// their field in one statement.
func StopHandle(h Handle) Handle {
	if h != nil {
		h.Stop()
	}
	return nil
}
