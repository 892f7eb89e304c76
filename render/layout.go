package render

// Layout maps corridor coordinates onto the screen. World x grows to the
// right from the hero's start mark; world y is the jump offset and grows up.
type Layout struct {
	Width   int
	Height  int
	Margin  float64
	GroundY float64
	// MinX and MaxX are the corridor ends in world units.
	MinX  float64
	MaxX  float64
	Scale float64
}

// NewLayout fits the corridor [minX, maxX] into a w x h screen with room for
// a sprite at either end.
func NewLayout(w, h int, minX, maxX float64) Layout {
	l := Layout{Width: w, Height: h, MinX: minX, MaxX: maxX, Scale: 1}
	span := maxX - minX
	if span <= 0 {
		span = 1
	}
	// leave half a sprite of margin at each end
	l.Scale = float64(w) / (span + FrameSize)
	if l.Scale < 1 {
		l.Scale = 1
	}
	l.Margin = (float64(w) - span*l.Scale) / 2
	l.GroundY = float64(h) * 0.8
	return l
}

// ToScreen returns the screen position of a world point on the ground line.
func (l Layout) ToScreen(x, y float64) (sx, sy float64) {
	return l.Margin + (x-l.MinX)*l.Scale, l.GroundY - y*l.Scale
}

// SpriteOrigin returns the top-left corner for a frame whose feet stand at
// world (x, y).
func (l Layout) SpriteOrigin(x, y float64) (sx, sy float64) {
	fx, fy := l.ToScreen(x, y)
	size := FrameSize * l.Scale
	return fx - size/2, fy - size
}
