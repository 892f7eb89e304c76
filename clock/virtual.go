package clock

import (
	"container/heap"
	"time"
)

// Virtual is a deterministic scheduler driven by explicit Advance calls. The
// host loop (ebiten Update, a terminal ticker, a test) owns the goroutine that
// advances it, which makes that goroutine the serialized execution context.
type Virtual struct {
	now     time.Duration
	seq     uint64
	entries entryHeap
	firing  bool
}

// NewVirtual creates a scheduler at virtual time zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

type entry struct {
	due      time.Duration
	interval time.Duration
	seq      uint64
	fn       func()
	index    int
	stopped  bool
	owner    *Virtual
}

func (e *entry) Stop() bool {
	if e == nil || e.stopped {
		return false
	}
	e.stopped = true
	if e.index >= 0 {
		heap.Remove(&e.owner.entries, e.index)
	}
	return true
}

// Now returns the virtual time elapsed since creation.
func (v *Virtual) Now() time.Duration {
	return v.now
}

// Every implements Scheduler. Non-positive intervals panic with
// ErrNonPositiveInterval since they would spin forever.
func (v *Virtual) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		panic(ErrNonPositiveInterval)
	}
	return v.push(interval, interval, fn)
}

// After implements Scheduler. A non-positive delay fires on the next Advance.
func (v *Virtual) After(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return v.push(delay, 0, fn)
}

func (v *Virtual) push(delay, interval time.Duration, fn func()) *entry {
	v.seq++
	e := &entry{
		due:      v.now + delay,
		interval: interval,
		seq:      v.seq,
		fn:       fn,
		index:    -1,
		owner:    v,
	}
	heap.Push(&v.entries, e)
	return e
}

// Pending returns the number of callbacks still scheduled.
func (v *Virtual) Pending() int {
	return len(v.entries)
}

// Advance moves virtual time forward by d, running every callback that comes
// due in order of due time, then scheduling order. Callbacks may schedule or
// stop other callbacks. Calls from inside a callback are ignored.
func (v *Virtual) Advance(d time.Duration) {
	if v.firing {
		return
	}
	if d < 0 {
		d = 0
	}
	v.firing = true
	defer func() { v.firing = false }()

	target := v.now + d
	for len(v.entries) > 0 {
		next := v.entries[0]
		if next.due > target {
			break
		}
		heap.Pop(&v.entries)
		v.now = next.due
		if next.interval > 0 {
			v.seq++
			next.seq = v.seq
			next.due += next.interval
			heap.Push(&v.entries, next)
		} else {
			next.stopped = true
		}
		next.fn()
	}
	v.now = target
}

// AdvanceTo moves virtual time to t if t is in the future.
func (v *Virtual) AdvanceTo(t time.Duration) {
	if t > v.now {
		v.Advance(t - v.now)
	}
}

type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}
