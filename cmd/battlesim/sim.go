package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/clock"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/STAR-FALL-00/work-hours-timer/prefabs"
)

type simOptions struct {
	seed      int64
	duration  time.Duration
	realtime  bool
	json      bool
	positions bool
	tuning    string
	logger    *log.Logger
}

// record is the JSON shape of one event.
type record struct {
	T         float64  `json:"t"`
	Event     string   `json:"event"`
	Actor     string   `json:"actor,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
	Animation string   `json:"animation,omitempty"`
	Flipped   *bool    `json:"flipped,omitempty"`
	State     string   `json:"state,omitempty"`
}

func toRecord(at time.Duration, ev battle.Event) record {
	r := record{T: at.Seconds()}
	switch e := ev.(type) {
	case battle.PositionChanged:
		r.Event, r.Actor, r.X = "position", e.Actor.String(), &e.X
	case battle.PositionChanged2D:
		r.Event, r.Actor, r.X, r.Y = "position", e.Actor.String(), &e.X, &e.Y
	case battle.AnimationChanged:
		r.Event, r.Actor, r.Animation = "animation", e.Actor.String(), e.Animation
	case battle.FlipChanged:
		r.Event, r.Actor, r.Flipped = "flip", e.Actor.String(), &e.Flipped
	case battle.StateChanged:
		r.Event, r.State = "state", e.State.String()
	}
	return r
}

// summary counts what happened over a run.
type summary struct {
	Elapsed    time.Duration
	Events     int
	States     map[battle.State]int
	Animations map[string]int
}

func (s summary) String() string {
	anims := make([]string, 0, len(s.Animations))
	for name, n := range s.Animations {
		anims = append(anims, fmt.Sprintf("%s=%d", name, n))
	}
	sort.Strings(anims)
	return fmt.Sprintf("%v simulated, %d events, %d fights, %d retreats; animations: %s",
		s.Elapsed.Round(time.Millisecond), s.Events, s.States[battle.StateFighting], s.States[battle.StateRetreating], strings.Join(anims, " "))
}

// printer writes events as they are published.
type printer struct {
	w         io.Writer
	enc       *json.Encoder
	positions bool
	now       func() time.Duration
	err       error
}

func (p *printer) handle(ev battle.Event) {
	if p.err != nil {
		return
	}
	if !p.positions && (ev.Kind() == battle.KindPosition || ev.Kind() == battle.KindPosition2D) {
		return
	}
	at := p.now()
	if p.enc != nil {
		p.err = p.enc.Encode(toRecord(at, ev))
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%10.3fs  %v\n", at.Seconds(), ev)
}

func run(ctx context.Context, opts simOptions, out io.Writer) (summary, error) {
	spec, err := prefabs.LoadBattleSpecPath(opts.tuning)
	if err != nil {
		return summary{}, err
	}

	var (
		sched   clock.Scheduler
		virtual *clock.Virtual
		loop    *clock.Loop
	)
	if opts.realtime {
		loop = clock.NewLoop(0)
		sched, virtual = loop, loop.Virtual
	} else {
		virtual = clock.NewVirtual()
		sched = virtual
	}

	c, err := battle.NewFromSpec(spec, battle.Config{
		Scheduler: sched,
		Rand:      common.NewRand(opts.seed),
		Logger:    opts.logger,
	})
	if err != nil {
		return summary{}, err
	}

	sum := summary{States: make(map[battle.State]int), Animations: make(map[string]int)}
	p := &printer{w: out, positions: opts.positions, now: virtual.Now}
	if opts.json {
		p.enc = json.NewEncoder(out)
	}
	c.Subscribe(func(ev battle.Event) {
		sum.Events++
		switch e := ev.(type) {
		case battle.StateChanged:
			sum.States[e.State]++
		case battle.AnimationChanged:
			sum.Animations[e.Actor.String()+"."+e.Animation]++
		}
		p.handle(ev)
	})

	if opts.realtime {
		if opts.duration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, opts.duration)
			defer cancel()
		}
		if err := loop.Post(ctx, c.Start); err != nil {
			return summary{}, err
		}
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return summary{}, err
		}
	} else {
		c.Start()
		virtual.Advance(opts.duration)
	}
	c.Stop()

	sum.Elapsed = virtual.Now()
	if p.err != nil {
		return sum, fmt.Errorf("battlesim: write events: %w", p.err)
	}
	return sum, nil
}
