// Package launch starts the game as an independent, detached process.
// There is no return channel: once the process has started the caller has
// nothing further to do with it.
package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNoPath is returned when a ProcessLauncher has no executable to run.
var ErrNoPath = errors.New("launch: no executable path")

// Launcher starts a process and forgets about it.
type Launcher interface {
	Launch(ctx context.Context, args ...string) error
}

// ProcessLauncher runs Path as a detached OS process with stdio on the null
// device, in its own session where the platform has one.
type ProcessLauncher struct {
	Path string
	Dir  string   // working directory; empty keeps the caller's
	Env  []string // environment; nil inherits the caller's
}

// Self returns a launcher for the running executable.
func Self() (ProcessLauncher, error) {
	exe, err := os.Executable()
	if err != nil {
		return ProcessLauncher{}, fmt.Errorf("launch: locate executable: %w", err)
	}
	return ProcessLauncher{Path: exe}, nil
}

// Launch starts the process and returns as soon as it is running. ctx only
// gates the start; cancelling it later does not touch the child.
func (l ProcessLauncher) Launch(ctx context.Context, args ...string) error {
	if l.Path == "" {
		return ErrNoPath
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("launch %s: %w", l.Path, err)
	}
	cmd := exec.Command(l.Path, args...) // #nosec G204 -- path is the game binary
	cmd.Dir = l.Dir
	cmd.Env = l.Env
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", l.Path, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("launch %s: release pid %d: %w", l.Path, cmd.Process.Pid, err)
	}
	return nil
}

// Func adapts a function to the Launcher interface.
type Func func(ctx context.Context, args ...string) error

func (f Func) Launch(ctx context.Context, args ...string) error {
	return f(ctx, args...)
}
