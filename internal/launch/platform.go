package launch

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/MrSnakeDoc/lc/internal/config"
)

// Openers builds the commands that reveal a path in the file manager
// or open it with the registered default program.
type Openers struct {
	goos   string
	reveal *config.CommandTemplate
	open   *config.CommandTemplate
}

// NewOpeners returns the openers for the running OS, with settings overrides applied.
func NewOpeners(s config.Settings) Openers {
	return newOpeners(runtime.GOOS, s)
}

func newOpeners(goos string, s config.Settings) Openers {
	return Openers{
		goos:   goos,
		reveal: s.Reveal,
		open:   s.Open,
	}
}

// RevealCommand selects path in its containing folder.
func (o Openers) RevealCommand(path string) Command {
	if o.reveal != nil {
		return fromTemplate(o.reveal, path, nil)
	}

	switch o.goos {
	case "windows":
		// explorer takes everything after /select, literally; the path is not escaped again
		return Command{
			Program: "explorer.exe",
			Args:    []string{"/select," + path},
			Line:    `/select,"` + path + `"`,
		}
	case "darwin":
		return Command{Program: "open", Args: []string{"-R", path}}
	default:
		// xdg-open cannot select a file; open its folder instead
		return Command{Program: "xdg-open", Args: []string{filepath.Dir(path)}}
	}
}

// OpenCommand opens path with its default program. The second return value
// holds the arguments the platform opener cannot forward.
func (o Openers) OpenCommand(path string, args []string) (Command, []string) {
	if o.open != nil {
		return fromTemplate(o.open, path, args), nil
	}

	switch o.goos {
	case "windows":
		line := `"` + path + `"`
		if len(args) > 0 {
			line += " " + QuoteArgs(args)
		}
		return Command{
			Program: "explorer.exe",
			Args:    append([]string{path}, args...),
			Line:    line,
		}, nil
	case "darwin":
		cmdArgs := []string{path}
		if len(args) > 0 {
			cmdArgs = append(cmdArgs, "--args")
			cmdArgs = append(cmdArgs, args...)
		}
		return Command{Program: "open", Args: cmdArgs}, nil
	default:
		return Command{Program: "xdg-open", Args: []string{path}}, args
	}
}

// fromTemplate substitutes {path} in the template arguments, or appends path
// when no argument mentions it. Extra args always go last.
func fromTemplate(t *config.CommandTemplate, path string, args []string) Command {
	cmdArgs := make([]string, 0, len(t.Args)+1+len(args))
	substituted := false
	for _, a := range t.Args {
		if strings.Contains(a, config.PathPlaceholder) {
			a = strings.ReplaceAll(a, config.PathPlaceholder, path)
			substituted = true
		}
		cmdArgs = append(cmdArgs, a)
	}
	if !substituted {
		cmdArgs = append(cmdArgs, path)
	}
	cmdArgs = append(cmdArgs, args...)

	return Command{Program: t.Command, Args: cmdArgs}
}

// QuoteArgs joins args with spaces, double-quoting those that contain a space.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.Contains(a, " ") {
			a = `"` + a + `"`
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
