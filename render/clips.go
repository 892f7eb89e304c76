package render

import "github.com/STAR-FALL-00/work-hours-timer/common"

// clip describes one row of a sprite sheet.
type clip struct {
	Name   string
	Frames int
	FPS    int
	Loop   bool
}

// clips is the row order of every generated sheet.
var clips = []clip{
	{Name: common.AnimIdle, Frames: 2, FPS: 3, Loop: true},
	{Name: common.AnimRun, Frames: 4, FPS: 10, Loop: true},
	{Name: common.AnimAttack1, Frames: 3, FPS: 12},
	{Name: common.AnimAttack2, Frames: 4, FPS: 12},
	{Name: common.AnimHurt, Frames: 2, FPS: 8},
	{Name: common.AnimJumpStart, Frames: 2, FPS: 8},
	{Name: common.AnimBlock, Frames: 2, FPS: 8},
	{Name: common.AnimRoll, Frames: 4, FPS: 16},
}

const sheetCols = 4

// clipRow returns the clip for an animation id and its row. Unknown ids fall
// back to Idle.
func clipRow(name string) (clip, int) {
	for i, c := range clips {
		if c.Name == name {
			return c, i
		}
	}
	return clips[0], 0
}

// ClipNames lists the animation ids in sheet row order.
func ClipNames() []string {
	names := make([]string, len(clips))
	for i, c := range clips {
		names[i] = c.Name
	}
	return names
}
