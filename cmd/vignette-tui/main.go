// Command vignette-tui plays the battle vignette in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/STAR-FALL-00/work-hours-timer/battle"
	"github.com/STAR-FALL-00/work-hours-timer/clock"
	"github.com/STAR-FALL-00/work-hours-timer/common"
	"github.com/STAR-FALL-00/work-hours-timer/prefabs"
	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	tuning := flag.String("tuning", "", "tuning yaml to load instead of prefabs/battle.yaml")
	logPath := flag.String("log", "", "append choreography logs to this file")
	flag.Parse()

	if err := run(*seed, *tuning, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "vignette-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(seed int64, tuningPath, logPath string) error {
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}

	spec, err := prefabs.LoadBattleSpecPath(tuningPath)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	v := clock.NewVirtual()
	c, err := battle.NewFromSpec(spec, battle.Config{
		Scheduler: v,
		Rand:      common.NewRand(seed),
		Logger:    log.New(logOut, "battle: ", log.Ltime|log.Lmicroseconds),
	})
	if err != nil {
		return err
	}
	var queue battle.EventQueue
	c.Subscribe(queue.Push)
	sc := newScene(c.Snapshot(), c.Tuning())

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	c.Start()
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					c.Stop()
					return nil
				}
				if ev.Key() != tcell.KeyRune {
					continue
				}
				switch ev.Rune() {
				case 's':
					c.Start()
				case 'x':
					c.Stop()
				case 'r':
					c.Reset()
				case 'q':
					c.Stop()
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			now := time.Now()
			v.Advance(now.Sub(last))
			last = now
		}

		for _, ev := range queue.Drain() {
			sc.apply(ev)
		}
		sc.running = c.Running()
		sc.draw(screen)
	}
}
