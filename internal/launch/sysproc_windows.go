//go:build windows

package launch

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

func configure(cmd *exec.Cmd, c Command, _ bool) {
	attr := &syscall.SysProcAttr{}

	if c.Line != "" {
		// CmdLine replaces the whole command line, program included
		attr.CmdLine = syscall.EscapeArg(c.Program) + " " + c.Line
	}
	if c.Hidden {
		attr.HideWindow = true
		attr.CreationFlags |= windows.CREATE_NO_WINDOW
	}

	cmd.SysProcAttr = attr
}
