package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	tuning := flag.String("tuning", "", "tuning yaml to load instead of prefabs/battle.yaml")
	watch := flag.Bool("watch", false, "reload tuning and scripts when they change on disk")
	mute := flag.Bool("mute", false, "disable sound cues")
	verbose := flag.Bool("v", false, "log choreography to stderr")
	debug := flag.Bool("debug", false, "show FPS and virtual time")
	scale := flag.Int("scale", 3, "window scale")
	transparent := flag.Bool("transparent", false, "transparent, undecorated, always-on-top window")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	paused := flag.Bool("paused", false, "wait for Start instead of starting immediately")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	var out io.Writer = io.Discard
	if *verbose {
		out = os.Stderr
	}
	logger := log.New(out, "battle: ", log.Ltime|log.Lmicroseconds)

	ebiten.SetWindowSize(baseWidth*(*scale), baseHeight*(*scale))
	ebiten.SetWindowTitle("work hours")
	if *transparent {
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
	}

	game, err := NewGame(options{
		seed:        *seed,
		tuningPath:  *tuning,
		watch:       *watch,
		mute:        *mute,
		debug:       *debug,
		transparent: *transparent,
		autostart:   !*paused,
		logger:      logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{ScreenTransparent: *transparent}); err != nil {
		log.Fatal(err)
	}
}
