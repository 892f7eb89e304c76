package battle

// EventQueue is a simple FIFO of events. Presentation adapters that render on
// their own cadence subscribe Push and Drain once per frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(ev Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, ev)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
