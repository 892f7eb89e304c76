package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/clock"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/STAR-FALL-00/work-hours-timer/prefabs"
	"github.com/STAR-FALL-00/work-hours-timer/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	baseWidth  = 320
	baseHeight = 120
)

var background = color.RGBA{R: 0x1b, G: 0x1f, B: 0x2a, A: 0xff}

type options struct {
	seed        int64
	tuningPath  string
	watch       bool
	mute        bool
	debug       bool
	transparent bool
	autostart   bool
	logger      *log.Logger
}

type Game struct {
	frames int
	opts   options

	clock    *clock.Virtual
	battle   *battle.Choreographer
	input    *Input
	vignette *render.Vignette
	cues     *render.Cues
	controls *Controls
	watcher  *prefabs.Watcher
}

func NewGame(opts options) (*Game, error) {
	spec, err := prefabs.LoadBattleSpecPath(opts.tuningPath)
	if err != nil {
		return nil, err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		opts:  opts,
		clock: clock.NewVirtual(),
		input: NewInput(),
	}
	g.battle, err = battle.NewFromSpec(spec, battle.Config{
		Scheduler: g.clock,
		Rand:      common.NewRand(seed),
		Logger:    opts.logger,
	})
	if err != nil {
		return nil, err
	}

	if !opts.mute {
		g.cues = render.NewCues(audio.NewContext(44100), opts.logger)
	}
	t := g.battle.Tuning()
	g.vignette = render.NewVignette(g.battle, render.NewLayout(baseWidth, baseHeight, t.HeroStartX, t.BossStartX), g.cues)
	g.controls = NewControls(g)

	if opts.watch {
		w, err := prefabs.WatchTuning(opts.tuningPath)
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if opts.autostart {
		g.battle.Start()
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.clock.Advance(time.Second / time.Duration(ebiten.TPS()))

	g.input.Update()
	if g.input.QuitPressed {
		g.Close()
		return ebiten.Termination
	}
	if g.input.StartPressed {
		g.battle.Start()
	}
	if g.input.StopPressed {
		g.battle.Stop()
	}
	if g.input.ResetPressed {
		g.battle.Reset()
	}
	if g.input.TogglePanel {
		g.controls.Visible = !g.controls.Visible
	}
	if g.input.ToggleHistory {
		g.vignette.ShowHistory = !g.vignette.ShowHistory
	}
	if g.input.ToggleMute && g.cues != nil {
		g.cues.Muted = !g.cues.Muted
	}

	g.pollReloads()
	g.vignette.Update()
	g.controls.Update()
	return nil
}

// pollReloads applies tuning changes reported by the watcher. It runs inside
// Update so reloads are serialized with the choreography.
func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !prefabs.Relevant(name, g.opts.tuningPath) {
				continue
			}
			spec, err := prefabs.LoadBattleSpecPath(g.opts.tuningPath)
			if err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
			if err := g.battle.Reload(spec); err != nil {
				log.Printf("reload %s: %v", name, err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.opts.transparent {
		screen.Fill(background)
	}
	g.vignette.Draw(screen)
	g.controls.Draw(screen)

	if g.opts.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  t=%v", ebiten.ActualFPS(), g.clock.Now().Truncate(time.Second)), 4, baseHeight-16)
	}
}

// Close releases the watcher and stops the choreography.
func (g *Game) Close() {
	g.battle.Stop()
	g.vignette.Close()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
