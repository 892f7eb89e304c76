package battle

import (
	"errors"
	"testing"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/clock"
	"github.com/STAR-FALL-00/work-hours-timer/prefabs"
)

func TestStockPrefabMatchesDefaults(t *testing.T) {
	spec, err := prefabs.LoadBattleSpec()
	if err != nil {
		t.Fatalf("LoadBattleSpec: %v", err)
	}
	got, err := NewTuning(spec)
	if err != nil {
		t.Fatalf("NewTuning: %v", err)
	}
	if want := DefaultTuning(); got != want {
		t.Fatalf("tuning = %+v\nwant %+v", got, want)
	}
}

func TestNewTuningRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*prefabs.BattleSpec)
	}{
		{"short delay range", func(s *prefabs.BattleSpec) { s.Timing.IdleDelayMS = []int{5000} }},
		{"inverted delay range", func(s *prefabs.BattleSpec) { s.Timing.FirstIdleDelayMS = []int{5000, 3000} }},
		{"zero movement rate", func(s *prefabs.BattleSpec) { s.Timing.MovementHz = 0 }},
		{"probability above one", func(s *prefabs.BattleSpec) { s.Combat.BlockChance = 1.5 }},
		{"boss left of hero", func(s *prefabs.BattleSpec) { s.Corridor.BossStartX = -1 }},
		{"inverted approach range", func(s *prefabs.BattleSpec) { s.Boss.ApproachMinX = 200 }},
		{"zero knockback steps", func(s *prefabs.BattleSpec) { s.Combat.Knockback.Steps = 0 }},
		{"zero rounds", func(s *prefabs.BattleSpec) { s.Combat.MaxRounds = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := prefabs.LoadBattleSpec()
			if err != nil {
				t.Fatalf("LoadBattleSpec: %v", err)
			}
			tc.mutate(spec)
			if _, err := NewTuning(spec); !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("err = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func TestDelayRangeDraw(t *testing.T) {
	r := DelayRange{Min: 3 * time.Second, Max: 5 * time.Second}
	if got := r.draw(&queueRand{ints: []int{1999}}); got != 4999*time.Millisecond {
		t.Fatalf("draw = %v, want 4.999s", got)
	}
	fixed := DelayRange{Min: time.Second, Max: time.Second}
	if got := fixed.draw(&queueRand{}); got != time.Second {
		t.Fatalf("draw = %v, want 1s", got)
	}
}

func TestReload(t *testing.T) {
	spec, err := prefabs.LoadBattleSpec()
	if err != nil {
		t.Fatalf("LoadBattleSpec: %v", err)
	}
	c, err := NewFromSpec(spec, Config{Scheduler: clock.NewVirtual(), Rand: &queueRand{}})
	if err != nil {
		t.Fatalf("NewFromSpec: %v", err)
	}

	spec.Combat.MaxRounds = 2
	if err := c.Reload(spec); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if c.Tuning().MaxRounds != 2 {
		t.Fatalf("max rounds = %d, want 2", c.Tuning().MaxRounds)
	}

	spec.Combat.MaxRounds = 7
	spec.Combat.Script = "missing.tengo"
	if err := c.Reload(spec); err == nil {
		t.Fatalf("expected error for a missing script")
	}
	if c.Tuning().MaxRounds != 2 {
		t.Fatalf("failed reload changed tuning: max rounds = %d", c.Tuning().MaxRounds)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	var bus Bus
	var a, b int
	var unsubA func()
	unsubA = bus.Subscribe(func(Event) {
		a++
		unsubA()
	})
	bus.Subscribe(func(Event) { b++ })

	bus.Publish(StateChanged{State: StateFighting})
	bus.Publish(StateChanged{State: StateIdle})
	if a != 1 || b != 2 {
		t.Fatalf("deliveries a=%d b=%d, want 1 and 2", a, b)
	}
	if bus.Len() != 1 {
		t.Fatalf("listeners = %d, want 1", bus.Len())
	}
}

func TestHandlersRouteByType(t *testing.T) {
	var states []State
	var flips int
	h := Handlers{
		State: func(e StateChanged) { states = append(states, e.State) },
		Flip:  func(FlipChanged) { flips++ },
	}
	h.Handle(StateChanged{State: StateCooldown})
	h.Handle(FlipChanged{Flipped: true})
	h.Handle(PositionChanged{X: 3})

	if len(states) != 1 || states[0] != StateCooldown || flips != 1 {
		t.Fatalf("states=%v flips=%d", states, flips)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(StateChanged{State: StateApproaching})
	q.Push(PositionChanged{X: 1})
	if q.Len() != 2 {
		t.Fatalf("len = %d, want 2", q.Len())
	}
	evs := q.Drain()
	if len(evs) != 2 || evs[0].Kind() != KindState || evs[1].Kind() != KindPosition {
		t.Fatalf("drain = %v", evs)
	}
	if q.Drain() != nil {
		t.Fatalf("second drain should be empty")
	}
}
