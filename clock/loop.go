package clock

import (
	"context"
	"time"
)

// DefaultResolution is how often Loop advances its virtual clock.
const DefaultResolution = 4 * time.Millisecond

// Loop drives a Virtual scheduler from wall-clock time on a single goroutine.
// Work from other goroutines (control calls, reloads) enters through Post so
// it is serialized with the scheduled callbacks.
type Loop struct {
	*Virtual

	resolution time.Duration
	posts      chan func()
	now        func() time.Time
}

// NewLoop creates a loop that advances every resolution. A non-positive
// resolution uses DefaultResolution.
func NewLoop(resolution time.Duration) *Loop {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	return &Loop{
		Virtual:    NewVirtual(),
		resolution: resolution,
		posts:      make(chan func(), 16),
		now:        time.Now,
	}
}

// Post queues fn to run on the loop goroutine. It blocks while the queue is
// full and gives up when ctx is done.
func (l *Loop) Post(ctx context.Context, fn func()) error {
	select {
	case l.posts <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run advances the clock in real time until ctx is cancelled and returns
// ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.resolution)
	defer ticker.Stop()

	last := l.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posts:
			fn()
		case <-ticker.C:
			now := l.now()
			l.Advance(now.Sub(last))
			last = now
		}
	}
}
