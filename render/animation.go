package render

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// frameClock steps through a clip at a fixed rate, one Update per game tick.
type frameClock struct {
	count       int
	loop        bool
	ticksPerFrm int

	current int
	tick    int
}

func newFrameClock(count, fps int, loop bool) frameClock {
	if fps <= 0 {
		fps = 12
	}
	ticks := int(math.Max(1, math.Round(60.0/float64(fps))))
	return frameClock{count: count, loop: loop, ticksPerFrm: ticks}
}

func (f *frameClock) update() {
	if f.count <= 1 {
		return
	}
	f.tick++
	if f.tick < f.ticksPerFrm {
		return
	}
	f.tick = 0
	f.current++
	if f.current >= f.count {
		if f.loop {
			f.current = 0
		} else {
			f.current = f.count - 1
		}
	}
}

// Animation plays one row of a sprite sheet. Frames are laid out left to
// right, one clip per row.
type Animation struct {
	Name   string
	clock  frameClock
	frames []*ebiten.Image
}

// NewAnimation slices the named clip's row out of sheet.
func NewAnimation(sheet *ebiten.Image, name string) *Animation {
	c, row := clipRow(name)
	a := &Animation{Name: c.Name, clock: newFrameClock(c.Frames, c.FPS, c.Loop)}
	if sheet == nil {
		return a
	}
	a.frames = make([]*ebiten.Image, c.Frames)
	for i := range a.frames {
		sx, sy := i*FrameSize, row*FrameSize
		a.frames[i] = sheet.SubImage(image.Rect(sx, sy, sx+FrameSize, sy+FrameSize)).(*ebiten.Image)
	}
	return a
}

// Update advances the animation. Call once per game update.
func (a *Animation) Update() {
	if a == nil {
		return
	}
	a.clock.update()
}

// Reset sets the animation back to its first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.clock.current, a.clock.tick = 0, 0
}

// Frame returns the index of the frame on screen.
func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.clock.current
}

// Draw draws the current frame with op.
func (a *Animation) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	if a == nil || len(a.frames) == 0 {
		return
	}
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(a.frames[a.clock.current%len(a.frames)], &dop)
}
