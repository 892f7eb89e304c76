package main

import (
	"fmt"
	"math"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/gdamore/tcell/v2"
)

const (
	maxLog   = 6
	margin   = 2
	rowPerY  = 10.0 // jump units per terminal row
	helpLine = "s start  x stop  r reset  q quit"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleGround = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleHero   = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue).Bold(true)
	styleBoss   = tcell.StyleDefault.Foreground(tcell.ColorDarkRed).Bold(true)
	styleWeapon = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHurt   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

type glyph struct {
	x, y    float64
	flipped bool
	anim    string
}

// scene is the terminal's picture of the vignette, built only from events.
type scene struct {
	hero    glyph
	boss    glyph
	state   battle.State
	running bool
	log     []string
	minX    float64
	maxX    float64
}

func newScene(s battle.Snapshot, t battle.Tuning) *scene {
	return &scene{
		hero:    glyph{x: s.Hero.X, flipped: s.Hero.Flipped, anim: s.Hero.Animation},
		boss:    glyph{x: s.Boss.X, y: s.Boss.Y, flipped: s.Boss.Flipped, anim: s.Boss.Animation},
		state:   s.State,
		running: s.Running,
		minX:    t.HeroStartX,
		maxX:    t.BossStartX,
	}
}

func (s *scene) actor(id common.Actor) *glyph {
	if id == common.Boss {
		return &s.boss
	}
	return &s.hero
}

func (s *scene) apply(ev battle.Event) {
	switch e := ev.(type) {
	case battle.PositionChanged:
		s.actor(e.Actor).x = e.X
		return
	case battle.PositionChanged2D:
		a := s.actor(e.Actor)
		a.x, a.y = e.X, e.Y
		return
	case battle.AnimationChanged:
		s.actor(e.Actor).anim = e.Animation
	case battle.FlipChanged:
		s.actor(e.Actor).flipped = e.Flipped
		return
	case battle.StateChanged:
		s.state = e.State
	}
	s.log = append(s.log, fmt.Sprint(ev))
	if len(s.log) > maxLog {
		s.log = s.log[len(s.log)-maxLog:]
	}
}

// column maps a corridor x to a terminal column.
func (s *scene) column(x float64, width int) int {
	span := s.maxX - s.minX
	usable := width - 2*margin - 1
	if span <= 0 || usable <= 0 {
		return margin
	}
	return margin + int(math.Round((x-s.minX)/span*float64(usable)))
}

// heroGlyphs returns the hero's body rune and the rune drawn in front of it.
func heroGlyphs(g glyph) (body, front rune) {
	switch g.anim {
	case common.AnimAttack1:
		return '@', '-'
	case common.AnimAttack2:
		return '@', '='
	case common.AnimBlock:
		return '@', ']'
	case common.AnimRoll:
		return 'o', 0
	case common.AnimHurt:
		return '*', 0
	}
	return '@', 0
}

// bossGlyphs returns the boss's body rune and the rune drawn above it.
func bossGlyphs(g glyph) (body, above rune) {
	switch g.anim {
	case common.AnimHurt:
		return '*', 0
	case common.AnimJumpStart:
		return 'B', '^'
	}
	return 'B', 0
}

func putText(scr tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}

func (s *scene) draw(scr tcell.Screen) {
	scr.Clear()
	w, h := scr.Size()
	if w < 20 || h < 10 {
		putText(scr, 0, 0, "terminal too small", styleText)
		scr.Show()
		return
	}

	status := s.state.String()
	if !s.running {
		status = "Stopped"
	}
	putText(scr, 0, 0, "work hours | "+status, styleTitle)
	putText(scr, 0, 1, helpLine, styleText)

	ground := h - maxLog - 2
	for x := 0; x < w; x++ {
		scr.SetContent(x, ground, '▔', nil, styleGround)
	}

	s.drawBoss(scr, w, ground-1)
	s.drawHero(scr, w, ground-1)

	for i, line := range s.log {
		putText(scr, 1, ground+1+i, line, styleText)
	}
	scr.Show()
}

func facing(g glyph) int {
	if g.flipped {
		return -1
	}
	return 1
}

func (s *scene) drawHero(scr tcell.Screen, w, row int) {
	col := s.column(s.hero.x, w)
	body, front := heroGlyphs(s.hero)
	style := styleHero
	if body == '*' {
		style = styleHurt
	}
	scr.SetContent(col, row, body, nil, style)
	if front != 0 {
		scr.SetContent(col+facing(s.hero), row, front, nil, styleWeapon)
	}
}

func (s *scene) drawBoss(scr tcell.Screen, w, ground int) {
	col := s.column(s.boss.x, w)
	row := ground - int(math.Round(s.boss.y/rowPerY))
	body, above := bossGlyphs(s.boss)
	style := styleBoss
	if body == '*' {
		style = styleHurt
	}
	scr.SetContent(col, row, body, nil, style)
	if above != 0 {
		scr.SetContent(col, row-1, above, nil, styleBoss)
	}
}
