package launch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestLaunch_NoPath(t *testing.T) {
	if err := (ProcessLauncher{}).Launch(context.Background()); !errors.Is(err, ErrNoPath) {
		t.Fatalf("err = %v, want ErrNoPath", err)
	}
}

func TestLaunch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ProcessLauncher{Path: "/bin/true"}.Launch(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestLaunch_MissingBinary(t *testing.T) {
	l := ProcessLauncher{Path: filepath.Join(t.TempDir(), "no-such-game")}
	if err := l.Launch(context.Background()); err == nil {
		t.Fatal("expected an error starting a missing binary")
	}
}

func shell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	return "/bin/sh"
}

func TestLaunch_ChildRunsIndependently(t *testing.T) {
	sh := shell(t)
	out := filepath.Join(t.TempDir(), "started")
	l := ProcessLauncher{Path: sh}
	if err := l.Launch(context.Background(), "-c", `printf ok > "$1"`, "sh", out); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if b, err := os.ReadFile(out); err == nil && string(b) == "ok" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("detached child never wrote its marker file")
}

func TestLaunch_DoesNotWait(t *testing.T) {
	sh := shell(t)
	start := time.Now()
	if err := (ProcessLauncher{Path: sh}).Launch(context.Background(), "-c", "sleep 5"); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if d := time.Since(start); d > 2*time.Second {
		t.Fatalf("Launch blocked for %v", d)
	}
}

func TestLaunch_WorkingDir(t *testing.T) {
	sh := shell(t)
	dir := t.TempDir()
	l := ProcessLauncher{Path: sh, Dir: dir}
	if err := l.Launch(context.Background(), "-c", "printf here > marker"); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(filepath.Join(dir, "marker")); err == nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("child did not run in Dir")
}

func TestSelf(t *testing.T) {
	l, err := Self()
	if err != nil {
		t.Fatalf("Self: %v", err)
	}
	if l.Path == "" {
		t.Fatal("Self returned an empty path")
	}
}

func TestFunc(t *testing.T) {
	var got []string
	var l Launcher = Func(func(_ context.Context, args ...string) error {
		got = args
		return nil
	})
	if err := l.Launch(context.Background(), "-ui", "term"); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != "term" {
		t.Fatalf("args = %v", got)
	}
}
