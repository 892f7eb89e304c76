package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/STAR-FALL-00/work-hours-timer/common"
	"golang.org/x/image/colornames"
)

// FrameSize is the width and height of one generated sprite frame.
const FrameSize = 32

var frameBounds = image.Rect(0, 0, FrameSize, FrameSize)

// figure is the palette and build of a generated character. Poses face right.
type figure struct {
	body   color.RGBA
	trim   color.RGBA
	skin   color.RGBA
	accent color.RGBA
	bulky  bool
}

var (
	heroFigure = figure{
		body:   colornames.Steelblue,
		trim:   colornames.Goldenrod,
		skin:   colornames.Peachpuff,
		accent: colornames.Silver,
	}
	bossFigure = figure{
		body:   colornames.Darkred,
		trim:   colornames.Dimgray,
		skin:   colornames.Rosybrown,
		accent: colornames.Orange,
		bulky:  true,
	}
)

type block struct {
	r image.Rectangle
	c color.RGBA
}

func box(x, y, w, h int, c color.RGBA) block {
	return block{r: image.Rect(x, y, x+w, y+h), c: c}
}

// Sheet returns the generated sprite sheet of an actor.
func Sheet(a common.Actor) *image.RGBA {
	if a == common.Boss {
		return buildSheet(bossFigure)
	}
	return buildSheet(heroFigure)
}

// buildSheet draws every clip of f into one sheet, one clip per row.
func buildSheet(f figure) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sheetCols*FrameSize, len(clips)*FrameSize))
	for row, c := range clips {
		for i := 0; i < c.Frames; i++ {
			origin := image.Pt(i*FrameSize, row*FrameSize)
			for _, b := range f.pose(c.Name, i) {
				r := b.r.Intersect(frameBounds).Add(origin)
				draw.Draw(img, r, &image.Uniform{C: b.c}, image.Point{}, draw.Src)
			}
		}
	}
	return img
}

// pose returns the blocks of one frame in draw order.
func (f figure) pose(anim string, frame int) []block {
	var (
		dy, lean   int
		legL, legR int
		body       = f.body
		extra      []block
	)

	switch anim {
	case common.AnimIdle:
		dy = frame % 2
	case common.AnimRun:
		stride := [4][2]int{{-3, 3}, {0, 0}, {3, -3}, {0, 0}}[frame%4]
		legL, legR = stride[0], stride[1]
		dy = frame % 2
		lean = 1
	case common.AnimAttack1:
		lean = frame
		extra = append(extra, box(22+lean, 18, 4+frame*4, 2, f.accent))
	case common.AnimAttack2:
		switch frame {
		case 0:
			extra = append(extra, box(20, 1, 2, 14, f.accent))
		case 1:
			extra = append(extra, box(21, 6, 3, 3, f.accent), box(24, 9, 3, 3, f.accent), box(27, 12, 3, 3, f.accent))
		default:
			lean = 2
			extra = append(extra, box(22+lean, 18, 12, 2, f.accent))
		}
	case common.AnimHurt:
		lean = -2
		if frame == 0 {
			body = colornames.White
		}
	case common.AnimJumpStart:
		dy = 3 + frame
	case common.AnimBlock:
		lean = -1
		extra = append(extra, box(22, 12-frame, 4, 14, f.trim))
	case common.AnimRoll:
		return f.ball(frame)
	}

	if f.bulky {
		return append([]block{
			box(9+legL, 24, 5, 8, f.trim),
			box(19+legR, 24, 5, 8, f.trim),
			box(7+lean, 12+dy, 18, 13, body),
			box(10+lean, 3+dy, 12, 10, f.skin),
			box(9+lean, dy, 2, 4, f.accent),
			box(21+lean, dy, 2, 4, f.accent),
			box(18+lean, 7+dy, 2, 2, f.accent),
			box(24+lean, 15+dy, 4, 6, f.skin),
		}, extra...)
	}
	return append([]block{
		box(12+legL, 25, 3, 7, f.trim),
		box(17+legR, 25, 3, 7, f.trim),
		box(11+lean, 15+dy, 10, 10, body),
		box(12+lean, 6+dy, 8, 8, f.skin),
		box(12+lean, 5+dy, 8, 3, f.trim),
		box(17+lean, 9+dy, 1, 2, colornames.Black),
		box(19+lean, 17+dy, 3, 5, f.skin),
	}, extra...)
}

// ball is the tucked roll: a body-coloured square with a stripe that travels
// round it.
func (f figure) ball(frame int) []block {
	stripe := [4]block{
		box(9, 18, 14, 3, f.trim),
		box(20, 18, 3, 14, f.trim),
		box(9, 29, 14, 3, f.trim),
		box(9, 18, 3, 14, f.trim),
	}[frame%4]
	return []block{box(9, 18, 14, 14, f.body), stripe}
}
