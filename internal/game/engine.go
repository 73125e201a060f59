package game

import (
	"fmt"
	"math/rand"
	"time"
)

// State is the engine's two-state machine.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "playing"
}

// Outcome is what a single Advance did.
type Outcome uint8

const (
	OutcomeIdle    Outcome = iota // nothing moved (game over, or quit)
	OutcomeMoved                  // head pushed, tail popped
	OutcomeAte                    // head pushed onto food, tail kept
	OutcomeCrashed                // hit a wall or the body; now game over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCrashed:
		return "crashed"
	}
	return "idle"
}

// Crash records why the last game ended.
type Crash uint8

const (
	CrashNone Crash = iota
	CrashWall
	CrashSelf
)

func (c Crash) String() string {
	switch c {
	case CrashWall:
		return "wall"
	case CrashSelf:
		return "self"
	}
	return "none"
}

// Engine owns all mutable game state: body, heading, food, score and the
// game-over flag. It never touches a screen or a clock; frontends feed it
// commands once per tick and render what it exposes.
type Engine struct {
	cfg  Config
	cols int
	rows int

	body    *Body
	heading Direction // direction of the last move
	pending Direction // direction the next move will take
	food    Point
	score   int
	state   State
	crash   Crash

	tick   int
	rng    *rand.Rand
	events *EventLog
}

// NewEngine validates cfg and returns an engine already reset to a fresh game.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: invalid config: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.StartBody = append([]Point(nil), cfg.StartBody...)
	e := &Engine{
		cfg:    cfg,
		cols:   cfg.Cols(),
		rows:   cfg.Rows(),
		body:   NewBody(cfg.Cols() * cfg.Rows()),
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- food placement only
		events: NewEventLog(eventLogLimit),
	}
	e.Reset()
	return e, nil
}

// Reset starts a new game: start body, start direction, score 0, playing,
// fresh food.
func (e *Engine) Reset() {
	e.body.Reset(e.cfg.StartBody...)
	e.heading = e.cfg.StartDirection
	e.pending = e.cfg.StartDirection
	e.score = 0
	e.state = StatePlaying
	e.crash = CrashNone
	e.SpawnFood()
	e.record(EventReset, "")
}

// SpawnFood drops food on a uniformly random cell. The cell may lie under
// the snake; it is not re-rolled.
func (e *Engine) SpawnFood() Point {
	e.food = Point{X: e.rng.Intn(e.cols), Y: e.rng.Intn(e.rows)}
	return e.food
}

// Steer sets the pending direction unless d reverses it. Each steer in a
// tick is checked against the direction left by the one before it.
func (e *Engine) Steer(d Direction) bool {
	if !d.Valid() || d == e.pending.Opposite() {
		return false
	}
	if d != e.pending {
		e.pending = d
		e.record(EventSteer, d.String())
	}
	return true
}

// HandleInput applies every command queued since the last tick, in order.
// Reset is honoured only while the game is over. It returns true as soon as
// it meets CmdQuit; later commands are dropped.
func (e *Engine) HandleInput(cmds []Command) bool {
	for _, c := range cmds {
		switch c {
		case CmdQuit:
			e.record(EventQuit, "")
			return true
		case CmdReset:
			if e.state == StateGameOver {
				e.Reset()
			}
		default:
			if d, ok := c.Direction(); ok {
				e.Steer(d)
			}
		}
	}
	return false
}

// Advance moves the snake one cell. It does nothing while the game is over.
// A move off the board or onto any body cell (tail included) ends the game
// and leaves the body untouched.
func (e *Engine) Advance() Outcome {
	if e.state == StateGameOver {
		return OutcomeIdle
	}
	next := e.body.Head().Add(e.pending)
	switch {
	case !next.In(e.cols, e.rows):
		e.endGame(CrashWall, next)
		return OutcomeCrashed
	case e.body.Contains(next):
		e.endGame(CrashSelf, next)
		return OutcomeCrashed
	}

	e.heading = e.pending
	e.body.PushFront(next)
	if next == e.food {
		e.score += e.cfg.FoodScore
		e.SpawnFood()
		e.record(EventAte, "next food "+e.food.String())
		return OutcomeAte
	}
	e.body.PopBack()
	return OutcomeMoved
}

// Tick runs one input+advance step. Rendering and pacing are the caller's.
// When quit is true nothing else happened.
func (e *Engine) Tick(cmds []Command) (out Outcome, quit bool) {
	e.tick++
	if e.HandleInput(cmds) {
		return OutcomeIdle, true
	}
	return e.Advance(), false
}

func (e *Engine) endGame(c Crash, at Point) {
	e.state = StateGameOver
	e.crash = c
	e.record(EventCrash, fmt.Sprintf("%s at %v", c, at))
}

func (e *Engine) record(kind EventKind, detail string) {
	e.events.Add(Event{
		Tick:   e.tick,
		Kind:   kind,
		Head:   e.body.Head(),
		Score:  e.score,
		Length: e.body.Len(),
		Detail: detail,
	})
}

// Config returns the config the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Cols is the board width in cells.
func (e *Engine) Cols() int { return e.cols }

// Rows is the board height in cells.
func (e *Engine) Rows() int { return e.rows }

// Len is the snake length.
func (e *Engine) Len() int { return e.body.Len() }

// Segment returns body segment i, 0 being the head.
func (e *Engine) Segment(i int) Point { return e.body.At(i) }

// Segments copies the body out, head first.
func (e *Engine) Segments() []Point { return e.body.Points() }

// Head is the head cell.
func (e *Engine) Head() Point { return e.body.Head() }

// Food is the food cell.
func (e *Engine) Food() Point { return e.food }

// Score is the current score.
func (e *Engine) Score() int { return e.score }

// State is playing or game over.
func (e *Engine) State() State { return e.state }

// GameOver reports whether the last game has ended.
func (e *Engine) GameOver() bool { return e.state == StateGameOver }

// Crash is why the last game ended, CrashNone while playing.
func (e *Engine) Crash() Crash { return e.crash }

// Direction is the direction the next Advance will move in.
func (e *Engine) Direction() Direction { return e.pending }

// Heading is the direction of the last completed move.
func (e *Engine) Heading() Direction { return e.heading }

// Ticks counts calls to Tick.
func (e *Engine) Ticks() int { return e.tick }

// Events is the engine's event log.
func (e *Engine) Events() *EventLog { return e.events }
