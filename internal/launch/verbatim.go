package launch

import (
	"strings"

	"github.com/MrSnakeDoc/lc/internal/domain"
)

// VerbatimCommand is a parsed "!" shortcut.
type VerbatimCommand struct {
	Command
	// Monitor is set by the "!?" prefix: stream output and wait for exit.
	Monitor bool
}

// ParseVerbatim splits a verbatim path into program and arguments.
// The program ends at the first space. The rest is kept raw for Windows and
// split on whitespace for everything else; quotes are not interpreted.
func ParseVerbatim(path string) VerbatimCommand {
	body := strings.TrimPrefix(path, domain.VerbatimPrefix)

	monitor := strings.HasPrefix(body, domain.MonitorPrefix)
	if monitor {
		body = strings.TrimPrefix(body, domain.MonitorPrefix)
	}

	program, rest, _ := strings.Cut(body, " ")

	return VerbatimCommand{
		Command: Command{
			Program: program,
			Args:    strings.Fields(rest),
			Line:    rest,
			Hidden:  monitor,
		},
		Monitor: monitor,
	}
}
