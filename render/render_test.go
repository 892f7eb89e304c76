package render

import (
	"encoding/binary"
	"image"
	"testing"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/common"
)

func TestClipRowFallsBackToIdle(t *testing.T) {
	c, row := clipRow(common.AnimRoll)
	if c.Name != common.AnimRoll || row != 7 {
		t.Fatalf("roll = %+v row %d", c, row)
	}
	c, row = clipRow("Dance")
	if c.Name != common.AnimIdle || row != 0 {
		t.Fatalf("unknown = %+v row %d, want Idle row 0", c, row)
	}
}

func opaquePixels(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestBuildSheetFillsOnlyClipFrames(t *testing.T) {
	for _, f := range []figure{heroFigure, bossFigure} {
		sheet := buildSheet(f)
		for row, c := range clips {
			for col := 0; col < sheetCols; col++ {
				cell := image.Rect(col*FrameSize, row*FrameSize, (col+1)*FrameSize, (row+1)*FrameSize)
				n := opaquePixels(sheet, cell)
				if col < c.Frames && n == 0 {
					t.Fatalf("%s frame %d is empty", c.Name, col)
				}
				if col >= c.Frames && n != 0 {
					t.Fatalf("%s cell %d should be blank, has %d pixels", c.Name, col, n)
				}
			}
		}
	}
}

func TestFrameClock(t *testing.T) {
	loop := newFrameClock(2, 30, true)
	for i := 0; i < 4; i++ {
		loop.update()
	}
	if loop.current != 0 {
		t.Fatalf("looping clip frame = %d after a full cycle, want 0", loop.current)
	}

	once := newFrameClock(3, 60, false)
	for i := 0; i < 10; i++ {
		once.update()
	}
	if once.current != 2 {
		t.Fatalf("one-shot clip frame = %d, want to hold the last frame", once.current)
	}
}

func TestLayoutKeepsCorridorOnScreen(t *testing.T) {
	l := NewLayout(320, 120, 0, 184)
	left, ground := l.ToScreen(0, 0)
	right, _ := l.ToScreen(184, 0)
	if left <= 0 || right >= 320 || left >= right {
		t.Fatalf("corridor maps to [%v, %v] on a 320 wide screen", left, right)
	}
	if ground != l.GroundY {
		t.Fatalf("ground y = %v, want %v", ground, l.GroundY)
	}
	_, up := l.ToScreen(0, 40)
	if up >= ground {
		t.Fatalf("jump offset should move up the screen: %v >= %v", up, ground)
	}
	sx, sy := l.SpriteOrigin(0, 0)
	if sx != left-FrameSize*l.Scale/2 || sy != ground-FrameSize*l.Scale {
		t.Fatalf("sprite origin = (%v, %v)", sx, sy)
	}
}

func TestActorViewApply(t *testing.T) {
	v := newActorView(battle.Actor{ID: common.Boss, X: 184, Flipped: true, Animation: common.AnimIdle})
	v.dirty = false

	if v.apply(battle.PositionChanged{Actor: common.Hero, X: 3}) {
		t.Fatalf("hero event applied to the boss view")
	}
	if !v.apply(battle.PositionChanged2D{Actor: common.Boss, X: 120, Y: 12}) || v.x != 120 || v.y != 12 {
		t.Fatalf("position not applied: %+v", v)
	}
	if !v.apply(battle.AnimationChanged{Actor: common.Boss, Animation: common.AnimJumpStart}) || !v.dirty {
		t.Fatalf("animation not applied: %+v", v)
	}
	if !v.apply(battle.FlipChanged{Actor: common.Boss}) || v.flipped {
		t.Fatalf("flip not applied: %+v", v)
	}
	if v.apply(battle.StateChanged{State: battle.StateFighting}) {
		t.Fatalf("state events belong to no actor")
	}
}

func TestCueFor(t *testing.T) {
	cases := []struct {
		ev   battle.Event
		want Cue
		ok   bool
	}{
		{battle.AnimationChanged{Actor: common.Hero, Animation: common.AnimAttack2}, CueSwing, true},
		{battle.AnimationChanged{Actor: common.Boss, Animation: common.AnimHurt}, CueHit, true},
		{battle.AnimationChanged{Actor: common.Hero, Animation: common.AnimBlock}, CueBlock, true},
		{battle.AnimationChanged{Actor: common.Hero, Animation: common.AnimRoll}, CueRoll, true},
		{battle.AnimationChanged{Actor: common.Boss, Animation: common.AnimJumpStart}, CueJump, true},
		{battle.AnimationChanged{Actor: common.Hero, Animation: common.AnimRun}, "", false},
		{battle.StateChanged{State: battle.StateFighting}, "", false},
	}
	for _, tc := range cases {
		got, ok := CueFor(tc.ev)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("CueFor(%v) = %q, %v; want %q, %v", tc.ev, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSynthesize(t *testing.T) {
	pcm := synthesize(tone{from: 440, to: 440, length: 100 * time.Millisecond}, 44100)
	if len(pcm) != 4410*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 4410*4)
	}
	peak := 0
	for i := 0; i < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("sample %d: channels differ", i/4)
		}
		if v := int(l); v > peak {
			peak = v
		}
	}
	if peak == 0 {
		t.Fatalf("tone is silent")
	}
}
