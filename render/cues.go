package render

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Cue names a short sound effect.
type Cue string

const (
	CueSwing Cue = "swing"
	CueHit   Cue = "hit"
	CueBlock Cue = "block"
	CueRoll  Cue = "roll"
	CueJump  Cue = "jump"
)

// tone is a decaying sine sweep.
type tone struct {
	from, to float64 // Hz
	length   time.Duration
}

var cueTones = map[Cue]tone{
	CueSwing: {from: 900, to: 300, length: 90 * time.Millisecond},
	CueHit:   {from: 220, to: 110, length: 140 * time.Millisecond},
	CueBlock: {from: 1400, to: 1300, length: 70 * time.Millisecond},
	CueRoll:  {from: 300, to: 600, length: 160 * time.Millisecond},
	CueJump:  {from: 400, to: 800, length: 120 * time.Millisecond},
}

// CueFor maps an event to the sound it should trigger.
func CueFor(ev battle.Event) (Cue, bool) {
	e, ok := ev.(battle.AnimationChanged)
	if !ok {
		return "", false
	}
	switch {
	case e.Actor == common.Hero && (e.Animation == common.AnimAttack1 || e.Animation == common.AnimAttack2):
		return CueSwing, true
	case e.Actor == common.Boss && e.Animation == common.AnimHurt:
		return CueHit, true
	case e.Actor == common.Hero && e.Animation == common.AnimBlock:
		return CueBlock, true
	case e.Actor == common.Hero && e.Animation == common.AnimRoll:
		return CueRoll, true
	case e.Actor == common.Boss && e.Animation == common.AnimJumpStart:
		return CueJump, true
	}
	return "", false
}

// synthesize renders t as 16-bit little-endian stereo PCM, the format
// audio.Context players consume.
func synthesize(t tone, sampleRate int) []byte {
	n := int(t.length.Seconds() * float64(sampleRate))
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*p
		phase += 2 * math.Pi * freq / float64(sampleRate)
		env := (1 - p) * (1 - p)
		v := int16(math.Sin(phase) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

// Cues plays a generated sound for combat events.
type Cues struct {
	players map[Cue]*audio.Player
	logger  *log.Logger
	Muted   bool
}

// NewCues synthesizes every cue for ctx.
func NewCues(ctx *audio.Context, logger *log.Logger) *Cues {
	c := &Cues{players: make(map[Cue]*audio.Player, len(cueTones)), logger: logger}
	for cue, t := range cueTones {
		c.players[cue] = ctx.NewPlayerFromBytes(synthesize(t, ctx.SampleRate()))
	}
	return c
}

// Handle plays the cue for ev, if any.
func (c *Cues) Handle(ev battle.Event) {
	if c == nil || c.Muted {
		return
	}
	cue, ok := CueFor(ev)
	if !ok {
		return
	}
	p := c.players[cue]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		if c.logger != nil {
			c.logger.Printf("cue %s: %v", cue, err)
		}
		return
	}
	p.Play()
}
