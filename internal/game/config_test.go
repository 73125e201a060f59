package game

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Cols() != 40 || cfg.Rows() != 30 {
		t.Fatalf("default grid = %dx%d, want 40x30", cfg.Cols(), cfg.Rows())
	}
	if cfg.FrameInterval() != time.Second/15 {
		t.Fatalf("frame interval = %v, want 1/15s", cfg.FrameInterval())
	}
}

func TestConfigValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero cell", func(c *Config) { c.CellSize = 0 }, ErrBadCellSize},
		{"width not a multiple", func(c *Config) { c.Width = 810 }, ErrBadPlayfield},
		{"negative height", func(c *Config) { c.Height = -20 }, ErrBadPlayfield},
		{"zero fps", func(c *Config) { c.FPS = 0 }, ErrBadFPS},
		{"negative food score", func(c *Config) { c.FoodScore = -1 }, ErrBadFoodScore},
		{"empty body", func(c *Config) { c.StartBody = nil }, ErrBadStartBody},
		{"body off board", func(c *Config) { c.StartBody = []Point{{40, 5}, {39, 5}} }, ErrBadStartBody},
		{"body gap", func(c *Config) { c.StartBody = []Point{{5, 5}, {3, 5}} }, ErrBadStartBody},
		{"body overlap", func(c *Config) { c.StartBody = []Point{{5, 5}, {4, 5}, {5, 5}} }, ErrBadStartBody},
		{"heading into neck", func(c *Config) { c.StartDirection = DirLeft }, ErrBadStartBody},
		{"unknown direction", func(c *Config) { c.StartDirection = Direction(9) }, ErrBadStartBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigValidate_JoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 0
	cfg.FoodScore = -5
	err := cfg.Validate()
	if !errors.Is(err, ErrBadFPS) || !errors.Is(err, ErrBadFoodScore) {
		t.Fatalf("expected both fps and food score errors, got %v", err)
	}
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 7
	if _, err := NewEngine(cfg); !errors.Is(err, ErrBadPlayfield) {
		t.Fatalf("NewEngine error = %v, want ErrBadPlayfield", err)
	}
}

func TestNewEngine_CopiesStartBody(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.StartBody[0] = Point{20, 20}
	e.Reset()
	if e.Head() != (Point{5, 5}) {
		t.Fatalf("engine picked up a later edit to the caller's body: head %v", e.Head())
	}
}
