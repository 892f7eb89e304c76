package main

import (
	"testing"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/gdamore/tcell/v2"
)

func testScene() *scene {
	t := battle.DefaultTuning()
	return &scene{
		hero:    glyph{x: t.HeroStartX, anim: common.AnimIdle},
		boss:    glyph{x: t.BossStartX, flipped: true, anim: common.AnimIdle},
		running: true,
		minX:    t.HeroStartX,
		maxX:    t.BossStartX,
	}
}

func TestColumnSpansCorridor(t *testing.T) {
	s := testScene()
	if got := s.column(0, 80); got != margin {
		t.Fatalf("column(0) = %d, want %d", got, margin)
	}
	if got := s.column(184, 80); got != 80-margin-1 {
		t.Fatalf("column(184) = %d, want %d", got, 80-margin-1)
	}
	if mid := s.column(92, 80); mid <= margin || mid >= 80-margin-1 {
		t.Fatalf("column(92) = %d not between the ends", mid)
	}
}

func TestSceneApply(t *testing.T) {
	s := testScene()
	s.apply(battle.PositionChanged2D{Actor: common.Boss, X: 120, Y: 20})
	s.apply(battle.AnimationChanged{Actor: common.Hero, Animation: common.AnimBlock})
	s.apply(battle.StateChanged{State: battle.StateFighting})
	s.apply(battle.FlipChanged{Actor: common.Hero, Flipped: true})

	if s.boss.x != 120 || s.boss.y != 20 {
		t.Fatalf("boss = %+v", s.boss)
	}
	if s.hero.anim != common.AnimBlock || !s.hero.flipped {
		t.Fatalf("hero = %+v", s.hero)
	}
	if s.state != battle.StateFighting {
		t.Fatalf("state = %v", s.state)
	}
	if len(s.log) != 2 {
		t.Fatalf("log = %v, want only animation and state lines", s.log)
	}
}

func TestDrawPlacesActors(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer scr.Fini()
	scr.SetSize(80, 24)

	s := testScene()
	s.hero.anim = common.AnimAttack1
	s.boss.y = 20
	s.boss.anim = common.AnimJumpStart
	s.draw(scr)

	ground := 24 - maxLog - 2
	heroCol := s.column(0, 80)
	if r, _, _, _ := scr.GetContent(heroCol, ground-1); r != '@' {
		t.Fatalf("hero cell = %q, want '@'", r)
	}
	if r, _, _, _ := scr.GetContent(heroCol+1, ground-1); r != '-' {
		t.Fatalf("weapon cell = %q, want '-'", r)
	}
	bossCol := s.column(184, 80)
	if r, _, _, _ := scr.GetContent(bossCol, ground-3); r != 'B' {
		t.Fatalf("boss cell = %q, want 'B' two rows up", r)
	}
	if r, _, _, _ := scr.GetContent(bossCol, ground-4); r != '^' {
		t.Fatalf("jump marker = %q, want '^'", r)
	}
}
