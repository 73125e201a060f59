package game

import (
	"errors"
	"fmt"
	"time"
)

// Config validation errors. Validate joins every failure it finds.
var (
	ErrBadCellSize  = errors.New("cell size must be positive")
	ErrBadPlayfield = errors.New("playfield must be a positive multiple of the cell size")
	ErrBadFPS       = errors.New("fps must be positive")
	ErrBadFoodScore = errors.New("food score must not be negative")
	ErrBadStartBody = errors.New("start body must be a contiguous in-bounds chain")
)

// Config is the immutable set of knobs an Engine and its frontends are built
// from. It is passed by value; StartBody is copied on every Reset.
type Config struct {
	Width    int // playfield width in pixels
	Height   int // playfield height in pixels
	CellSize int // pixel size of one grid cell
	FPS      int // ticks per second

	FoodScore      int // score added per food eaten
	StartBody      []Point
	StartDirection Direction

	// Seed for food placement. Zero seeds from the clock.
	Seed int64

	Title string
}

// DefaultConfig returns the classic 800x600 board: 20px cells at 15 ticks
// per second, a three-segment snake heading right.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		CellSize:       20,
		FPS:            15,
		FoodScore:      10,
		StartBody:      []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		StartDirection: DirRight,
		Title:          "Snake",
	}
}

// Cols is the playfield width in cells.
func (c Config) Cols() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Width / c.CellSize
}

// Rows is the playfield height in cells.
func (c Config) Rows() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Height / c.CellSize
}

// FrameInterval is the wall-clock time between ticks.
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

// Validate reports every problem with the config.
func (c Config) Validate() error {
	var errs []error
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrBadCellSize, c.CellSize))
	} else if c.Width <= 0 || c.Height <= 0 || c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d with cell %d", ErrBadPlayfield, c.Width, c.Height, c.CellSize))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrBadFPS, c.FPS))
	}
	if c.FoodScore < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrBadFoodScore, c.FoodScore))
	}
	if len(errs) == 0 {
		if err := c.validateStartBody(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c Config) validateStartBody() error {
	if len(c.StartBody) == 0 {
		return fmt.Errorf("%w: empty", ErrBadStartBody)
	}
	if !c.StartDirection.Valid() {
		return fmt.Errorf("%w: unknown direction %d", ErrBadStartBody, c.StartDirection)
	}
	cols, rows := c.Cols(), c.Rows()
	seen := make(map[Point]bool, len(c.StartBody))
	for i, p := range c.StartBody {
		if !p.In(cols, rows) {
			return fmt.Errorf("%w: segment %d at %v is outside %dx%d", ErrBadStartBody, i, p, cols, rows)
		}
		if seen[p] {
			return fmt.Errorf("%w: segment %d at %v overlaps", ErrBadStartBody, i, p)
		}
		seen[p] = true
		if i > 0 && c.StartBody[i-1].Manhattan(p) != 1 {
			return fmt.Errorf("%w: segment %d at %v is not adjacent to %v", ErrBadStartBody, i, p, c.StartBody[i-1])
		}
	}
	// The first move must not fold the head back onto the neck.
	if len(c.StartBody) > 1 && c.StartBody[0].Add(c.StartDirection) == c.StartBody[1] {
		return fmt.Errorf("%w: heading %s runs into the neck", ErrBadStartBody, c.StartDirection)
	}
	return nil
}
