//go:build unix

package launch

import (
	"os/exec"
	"syscall"
)

// detach puts the child in a new session so it outlives the caller's
// terminal and process group.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
