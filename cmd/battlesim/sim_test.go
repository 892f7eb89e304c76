package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/common"
)

func TestToRecord(t *testing.T) {
	r := toRecord(1500*time.Millisecond, battle.PositionChanged2D{Actor: common.Boss, X: 120, Y: 8})
	if r.T != 1.5 || r.Event != "position" || r.Actor != "boss" || *r.X != 120 || *r.Y != 8 {
		t.Fatalf("record = %+v", r)
	}
	r = toRecord(0, battle.StateChanged{State: battle.StateCooldown})
	if r.Event != "state" || r.State != "Cooldown" || r.X != nil {
		t.Fatalf("record = %+v", r)
	}
}

func TestRunFastForward(t *testing.T) {
	var out bytes.Buffer
	opts := simOptions{seed: 7, duration: 2 * time.Minute, json: true, logger: log.New(io.Discard, "", 0)}
	sum, err := run(context.Background(), opts, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sum.Elapsed != 2*time.Minute {
		t.Fatalf("elapsed = %v, want 2m", sum.Elapsed)
	}
	if sum.States[battle.StateFighting] == 0 || sum.States[battle.StateRetreating] == 0 {
		t.Fatalf("no full battle in two minutes: %v", sum)
	}

	lines := 0
	last := -1.0
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var r record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("line %d: %v", lines, err)
		}
		if r.Event == "position" {
			t.Fatalf("position events should be filtered by default")
		}
		if r.T < last {
			t.Fatalf("timestamps went backwards: %v after %v", r.T, last)
		}
		last = r.T
		lines++
	}
	if lines == 0 {
		t.Fatalf("no events printed")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	runText := func() string {
		var out bytes.Buffer
		opts := simOptions{seed: 42, duration: 40 * time.Second, positions: true, logger: log.New(io.Discard, "", 0)}
		if _, err := run(context.Background(), opts, &out); err != nil {
			t.Fatalf("run: %v", err)
		}
		return out.String()
	}
	a, b := runText(), runText()
	if a != b {
		t.Fatalf("same seed produced different event logs")
	}
	if !strings.Contains(a, "state Approaching") {
		t.Fatalf("log never reached Approaching:\n%s", a)
	}
}
