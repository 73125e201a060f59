package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/Garsondee/snake/internal/game"
	"github.com/Garsondee/snake/internal/launch"
	"github.com/Garsondee/snake/internal/sound"
	"github.com/Garsondee/snake/internal/term"
)

var logger = log.New(os.Stderr, "[snake] ", log.LstdFlags)

func main() {
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		logger.Fatal(err)
	}
}

// run parses args and plays until the player quits. Deferred cleanup runs
// before main sees the error.
func run(args []string) error {
	cfg := game.DefaultConfig()
	var ui string
	var mute bool
	var detach bool

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.StringVar(&ui, "ui", "window", "frontend: window or term")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "playfield width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "playfield height in pixels")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "grid cell size in pixels")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "ticks per second")
	fs.Int64Var(&cfg.Seed, "seed", 0, "food RNG seed (0 = time based)")
	fs.BoolVar(&mute, "mute", false, "disable sound")
	fs.BoolVar(&detach, "detach", false, "start the game as a detached process and return at once")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if detach {
		if err := relaunch(args); err != nil {
			return err
		}
		fmt.Println("Snake game launched! Check your console or separate window.")
		return nil
	}

	engine, err := game.NewEngine(cfg)
	if err != nil {
		return err
	}
	cues, closeCues := openSound(mute)
	defer closeCues()

	switch ui {
	case "window":
		return runWindow(engine, cues)
	case "term":
		return runTerminal(engine, cues)
	}
	return fmt.Errorf("unsupported -ui %q (supported: window, term)", ui)
}

func runWindow(engine *game.Engine, cues sound.Player) error {
	g, err := game.New(engine, cues, logger)
	if err != nil {
		return err
	}
	return g.Run()
}

func runTerminal(engine *game.Engine, cues sound.Player) error {
	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return term.New(screen, engine, cues).Run(ctx)
}

// openSound returns the speaker, or Mute when muted or no audio device is
// available. Sound is never a reason to refuse to start.
var openSound = func(mute bool) (sound.Player, func()) {
	if mute {
		return sound.Mute{}, func() {}
	}
	sp, err := sound.NewSpeaker(logger)
	if err != nil {
		logger.Printf("sound disabled: %v", err)
		return sound.Mute{}, func() {}
	}
	return sp, sp.Close
}

// relaunch starts this binary again, detached, with the same flags minus
// -detach.
func relaunch(args []string) error {
	l, err := launch.Self()
	if err != nil {
		return err
	}
	return l.Launch(context.Background(), withoutDetach(args)...)
}

func withoutDetach(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		name := strings.TrimLeft(a, "-")
		if a != name && (name == "detach" || strings.HasPrefix(name, "detach=")) {
			continue
		}
		out = append(out, a)
	}
	return out
}
