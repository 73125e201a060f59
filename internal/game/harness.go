package game

import "fmt"

// Harness is a headless driver around an Engine, used by tests and the
// headless report. It has no Ebiten dependency and is deterministic for a
// given seed.
type Harness struct {
	Engine *Engine
	queue  []Command
}

// harnessOptionKind controls the pass in which an option is applied.
type harnessOptionKind int

const (
	harnessOptConfig harnessOptionKind = iota // board, body, seed: before the engine exists
	harnessOptState                           // food and friends: after the engine is reset
)

// HarnessOption is a builder function applied while constructing a Harness.
type HarnessOption struct {
	kind harnessOptionKind
	cfg  func(*Config)
	eng  func(*Engine)
}

// WithSeed sets the food RNG seed.
func WithSeed(seed int64) HarnessOption {
	return HarnessOption{kind: harnessOptConfig, cfg: func(c *Config) { c.Seed = seed }}
}

// WithGrid sets the board size in cells, keeping the cell size.
func WithGrid(cols, rows int) HarnessOption {
	return HarnessOption{kind: harnessOptConfig, cfg: func(c *Config) {
		c.Width = cols * c.CellSize
		c.Height = rows * c.CellSize
	}}
}

// WithBody sets the start body, head first.
func WithBody(pts ...Point) HarnessOption {
	return HarnessOption{kind: harnessOptConfig, cfg: func(c *Config) {
		c.StartBody = append([]Point(nil), pts...)
	}}
}

// WithDirection sets the start direction.
func WithDirection(d Direction) HarnessOption {
	return HarnessOption{kind: harnessOptConfig, cfg: func(c *Config) { c.StartDirection = d }}
}

// WithFoodScore sets the score per food.
func WithFoodScore(n int) HarnessOption {
	return HarnessOption{kind: harnessOptConfig, cfg: func(c *Config) { c.FoodScore = n }}
}

// WithFood places the first food on p instead of a random cell.
func WithFood(p Point) HarnessOption {
	return HarnessOption{kind: harnessOptState, eng: func(e *Engine) { e.food = p }}
}

// NewHarness builds a harness on DefaultConfig with seed 1, then applies
// opts in two passes: config options, then state options on the fresh engine.
// It panics on an invalid config; harness callers build boards by hand.
func NewHarness(opts ...HarnessOption) *Harness {
	cfg := DefaultConfig()
	cfg.Seed = 1
	for _, o := range opts {
		if o.kind == harnessOptConfig {
			o.cfg(&cfg)
		}
	}
	e, err := NewEngine(cfg)
	if err != nil {
		panic(fmt.Sprintf("harness: %v", err))
	}
	for _, o := range opts {
		if o.kind == harnessOptState {
			o.eng(e)
		}
	}
	return &Harness{Engine: e}
}

// Press queues commands for the next Step.
func (h *Harness) Press(cmds ...Command) {
	h.queue = append(h.queue, cmds...)
}

// PlaceFood moves the current food to p.
func (h *Harness) PlaceFood(p Point) {
	h.Engine.food = p
}

// Step runs one tick with everything queued since the last Step.
func (h *Harness) Step() (Outcome, bool) {
	cmds := h.queue
	h.queue = nil
	return h.Engine.Tick(cmds)
}

// Run steps n ticks, stopping early on quit, and returns each outcome.
func (h *Harness) Run(n int) []Outcome {
	out := make([]Outcome, 0, n)
	for i := 0; i < n; i++ {
		o, quit := h.Step()
		out = append(out, o)
		if quit {
			break
		}
	}
	return out
}

// Snapshot is the observable engine state between two ticks.
type Snapshot struct {
	Tick   int
	Length int
	Score  int
	Head   Point
	Food   Point
	State  State
}

// Snapshot captures the current observable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:   e.tick,
		Length: e.body.Len(),
		Score:  e.score,
		Head:   e.body.Head(),
		Food:   e.food,
		State:  e.state,
	}
}

// StepViolations checks one Advance against the game's growth and scoring
// rules and describes every rule it broke. before and after must bracket a
// single Advance that ran while playing; resets are not checked.
func StepViolations(before, after Snapshot, out Outcome, foodScore int) []string {
	var v []string
	dl := after.Length - before.Length
	ds := after.Score - before.Score
	switch out {
	case OutcomeAte:
		if dl != 1 {
			v = append(v, fmt.Sprintf("ate but length changed by %d", dl))
		}
		if ds != foodScore {
			v = append(v, fmt.Sprintf("ate but score changed by %d, want %d", ds, foodScore))
		}
		if after.Head != before.Food {
			v = append(v, fmt.Sprintf("ate at %v but food was at %v", after.Head, before.Food))
		}
	case OutcomeMoved:
		if dl != 0 {
			v = append(v, fmt.Sprintf("moved but length changed by %d", dl))
		}
		if ds != 0 {
			v = append(v, fmt.Sprintf("moved but score changed by %d", ds))
		}
		if after.Head == before.Food {
			v = append(v, fmt.Sprintf("moved onto food at %v without eating", after.Head))
		}
		if before.Head.Manhattan(after.Head) != 1 {
			v = append(v, fmt.Sprintf("head jumped %v -> %v", before.Head, after.Head))
		}
	case OutcomeCrashed:
		if after.State != StateGameOver {
			v = append(v, "crashed but still playing")
		}
		if dl != 0 || ds != 0 || after.Head != before.Head {
			v = append(v, "crash changed the snake")
		}
	case OutcomeIdle:
		if before.State == StatePlaying {
			v = append(v, "idle tick while playing")
		}
	}
	return v
}
