package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the single-frame control presses for the overlay.
type Input struct {
	// StartPressed is true on the frame S or the gamepad start button was pressed.
	StartPressed bool
	StopPressed  bool
	ResetPressed bool
	// TogglePanel shows or hides the button strip (Tab).
	TogglePanel   bool
	ToggleHistory bool
	ToggleMute    bool
	QuitPressed   bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	var gpStart, gpStop, gpReset bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		gpStart = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
		gpStop = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight)
		gpReset = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterLeft)
	}

	i.StartPressed = inpututil.IsKeyJustPressed(ebiten.KeyS) || gpStart
	i.StopPressed = inpututil.IsKeyJustPressed(ebiten.KeyX) || gpStop
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) || gpReset
	i.TogglePanel = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.ToggleHistory = inpututil.IsKeyJustPressed(ebiten.KeyH)
	i.ToggleMute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF12)
}
