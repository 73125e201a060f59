// Package term runs the snake engine in a terminal using tcell. Each grid
// cell is two terminal columns wide; the top row holds the score.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/snake/internal/game"
	"github.com/Garsondee/snake/internal/sound"
)

const (
	cellCols  = 2 // terminal columns per grid cell
	boardTop  = 1 // first screen row of the board
	eventsCap = 64
)

// Frontend drives an Engine from a tcell screen on a fixed ticker.
type Frontend struct {
	screen tcell.Screen
	engine *game.Engine
	cues   sound.Player
	cfg    game.Config

	pending []game.Command
}

// Open creates and initialises the terminal screen. The caller must Fini it.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	s.HideCursor()
	return s, nil
}

// New wraps an initialised screen. cues may be nil for silence.
func New(screen tcell.Screen, engine *game.Engine, cues sound.Player) *Frontend {
	if cues == nil {
		cues = sound.Mute{}
	}
	return &Frontend{
		screen: screen,
		engine: engine,
		cues:   cues,
		cfg:    engine.Config(),
	}
}

// Run ticks the engine at the configured rate until the player quits or ctx
// is done. Input is read on a separate goroutine and handed over on a
// channel; only this goroutine touches the engine and the screen.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, eventsCap)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(f.cfg.FrameInterval())
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if f.HandleEvent(ev) {
				f.engine.HandleInput([]game.Command{game.CmdQuit})
				return nil
			}
		case <-ticker.C:
			if f.Step() {
				return nil
			}
		}
	}
}

// HandleEvent queues the command for ev. It reports true when ev asks to
// quit, which the caller honours at once rather than on the next tick.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c, ok := CommandForKey(ev)
		if !ok {
			return false
		}
		if c == game.CmdQuit {
			return true
		}
		f.pending = append(f.pending, c)
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false
}

// Step runs one tick with the queued commands and redraws.
func (f *Frontend) Step() bool {
	cmds := f.pending
	f.pending = nil
	out, quit := f.engine.Tick(cmds)
	if quit {
		return true
	}
	switch out {
	case game.OutcomeAte:
		f.cues.Play(sound.CueEat)
	case game.OutcomeCrashed:
		f.cues.Play(sound.CueCrash)
	}
	f.Draw()
	return false
}

// CommandForKey maps a terminal key to an engine command.
func CommandForKey(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.CmdUp, true
	case tcell.KeyDown:
		return game.CmdDown, true
	case tcell.KeyLeft:
		return game.CmdLeft, true
	case tcell.KeyRight:
		return game.CmdRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.CmdUp, true
		case 's', 'S':
			return game.CmdDown, true
		case 'a', 'A':
			return game.CmdLeft, true
		case 'd', 'D':
			return game.CmdRight, true
		case 'r', 'R':
			return game.CmdReset, true
		case 'q', 'Q':
			return game.CmdQuit, true
		}
	}
	return game.CmdNone, false
}
