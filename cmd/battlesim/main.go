// Command battlesim runs the battle choreography without a window and prints
// its event stream.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var opts simOptions
	flag.Int64Var(&opts.seed, "seed", 1, "random seed")
	flag.DurationVar(&opts.duration, "duration", time.Minute, "simulated time to run (0 runs until interrupted with -realtime)")
	flag.BoolVar(&opts.realtime, "realtime", false, "run against the wall clock instead of fast-forwarding")
	flag.BoolVar(&opts.json, "json", false, "print events as JSON lines")
	flag.BoolVar(&opts.positions, "positions", false, "include position events")
	flag.StringVar(&opts.tuning, "tuning", "", "tuning yaml to load instead of prefabs/battle.yaml")
	verbose := flag.Bool("v", false, "log choreography to stderr")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *verbose {
		logOut = os.Stderr
	}
	opts.logger = log.New(logOut, "battle: ", log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := run(ctx, opts, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(os.Stderr, sum)
}
