package battle

import (
	"fmt"

	"github.com/STAR-FALL-00/work-hours-timer/common"
)

// EventKind tags the concrete type behind an Event.
type EventKind int

const (
	KindPosition EventKind = iota
	KindPosition2D
	KindAnimation
	KindFlip
	KindState
)

// Event is a notification published synchronously at the moment of mutation.
type Event interface {
	Kind() EventKind
}

// PositionChanged reports the hero's x.
type PositionChanged struct {
	Actor common.Actor
	X     float64
}

// PositionChanged2D reports the boss's x and its vertical jump offset.
type PositionChanged2D struct {
	Actor common.Actor
	X     float64
	Y     float64
}

// AnimationChanged is only published when the id differs from the previous one.
type AnimationChanged struct {
	Actor     common.Actor
	Animation string
}

// FlipChanged is published on every facing update, including no-op ones.
// Flipped means facing left.
type FlipChanged struct {
	Actor   common.Actor
	Flipped bool
}

type StateChanged struct {
	State State
}

func (PositionChanged) Kind() EventKind   { return KindPosition }
func (PositionChanged2D) Kind() EventKind { return KindPosition2D }
func (AnimationChanged) Kind() EventKind  { return KindAnimation }
func (FlipChanged) Kind() EventKind       { return KindFlip }
func (StateChanged) Kind() EventKind      { return KindState }

func (e PositionChanged) String() string {
	return fmt.Sprintf("%s x=%.1f", e.Actor, e.X)
}

func (e PositionChanged2D) String() string {
	return fmt.Sprintf("%s x=%.1f y=%.1f", e.Actor, e.X, e.Y)
}

func (e AnimationChanged) String() string {
	return fmt.Sprintf("%s plays %s", e.Actor, e.Animation)
}

func (e FlipChanged) String() string {
	dir := "right"
	if e.Flipped {
		dir = "left"
	}
	return fmt.Sprintf("%s faces %s", e.Actor, dir)
}

func (e StateChanged) String() string {
	return "state " + e.State.String()
}

// Listener receives events.
type Listener func(Event)

// Handlers routes events to typed callbacks; nil callbacks are skipped.
type Handlers struct {
	Position   func(PositionChanged)
	Position2D func(PositionChanged2D)
	Animation  func(AnimationChanged)
	Flip       func(FlipChanged)
	State      func(StateChanged)
}

// Handle dispatches ev to the matching callback.
func (h Handlers) Handle(ev Event) {
	switch e := ev.(type) {
	case PositionChanged:
		if h.Position != nil {
			h.Position(e)
		}
	case PositionChanged2D:
		if h.Position2D != nil {
			h.Position2D(e)
		}
	case AnimationChanged:
		if h.Animation != nil {
			h.Animation(e)
		}
	case FlipChanged:
		if h.Flip != nil {
			h.Flip(e)
		}
	case StateChanged:
		if h.State != nil {
			h.State(e)
		}
	}
}

type subscription struct {
	id       int
	listener Listener
}

// Bus fans events out to listeners in registration order. It does no
// buffering: Publish returns after every listener has run.
type Bus struct {
	subs   []subscription
	nextID int
}

// Subscribe registers l and returns a function that removes it.
func (b *Bus) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, listener: l})
	return func() { b.remove(id) }
}

func (b *Bus) remove(id int) {
	for i, s := range b.subs {
		if s.id == id {
			// copy so a Publish iterating the old slice is unaffected
			subs := make([]subscription, 0, len(b.subs)-1)
			subs = append(subs, b.subs[:i]...)
			b.subs = append(subs, b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every listener registered when the call started.
func (b *Bus) Publish(ev Event) {
	for _, s := range b.subs {
		s.listener(ev)
	}
}

// Len returns the number of listeners.
func (b *Bus) Len() int {
	return len(b.subs)
}
