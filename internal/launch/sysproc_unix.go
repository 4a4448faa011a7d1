//go:build unix

package launch

import (
	"os/exec"
	"syscall"
)

// configure puts fire-and-forget children in their own session so they
// survive the terminal that launched them. Line and Hidden only matter on Windows.
func configure(cmd *exec.Cmd, _ Command, detach bool) {
	if detach {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	}
}
