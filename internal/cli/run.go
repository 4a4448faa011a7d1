package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/lc/internal/app"
	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/version"
)

type flags struct {
	open       bool
	list       bool
	search     bool
	print      bool
	create     bool
	edit       bool
	dir        bool
	importFile bool
	stats      bool
	serve      bool
	version    bool
	format     string
}

func (f *flags) modes() []string {
	var set []string
	for name, on := range map[string]bool{
		"--open": f.open, "--list": f.list, "--search": f.search, "--print": f.print,
		"--create": f.create, "--edit": f.edit, "--dir": f.dir, "--import": f.importFile,
		"--stats": f.stats, "--serve": f.serve, "--version": f.version,
	} {
		if on {
			set = append(set, name)
		}
	}
	return set
}

func (c *CLI) run(cmd *cobra.Command, f *flags, args []string) error {
	if modes := f.modes(); len(modes) > 1 {
		slices.Sort(modes)
		return &usageError{msg: "Invalid argument: " + strings.Join(modes, " ")}
	}

	r, err := newRenderer(c.Stdout, f.format)
	if err != nil {
		return err
	}

	if f.version {
		return c.printVersion()
	}
	if len(f.modes()) == 0 && len(args) == 0 {
		fmt.Fprint(c.Stdout, helpText)
		return nil
	}

	if err := checkOperands(f, args); err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := c.NewApp(ctx)
	if err != nil {
		return fatal(err)
	}
	defer a.Close()

	switch {
	case f.list:
		shortcuts, err := a.List()
		if err != nil {
			return classify(err)
		}
		return r.Shortcuts(shortcuts)

	case f.search:
		shortcuts, err := a.Search(args[0])
		if err != nil {
			return classify(err)
		}
		return r.Shortcuts(shortcuts)

	case f.print:
		path, err := a.Print(args[0])
		if errors.Is(err, domain.ErrShortcutNotFound) {
			return &usageError{msg: args[0] + " is not defined."}
		}
		if err != nil {
			return classify(err)
		}
		fmt.Fprintln(c.Stdout, path)
		return nil

	case f.create:
		return fatal(a.Create(args[0], args[1]))

	case f.edit:
		return classify(a.Edit(ctx))

	case f.dir:
		return classify(a.RevealConfig(ctx))

	case f.importFile:
		return c.runImport(a, args[0])

	case f.stats:
		stats, err := a.Stats(ctx)
		if errors.Is(err, app.ErrUsageDisabled) {
			return err
		}
		if err != nil {
			return fatal(err)
		}
		return r.Stats(stats)

	case f.serve:
		return c.runServe(ctx, a)

	default:
		return classify(a.Launch(ctx, args[0], args[1:], f.open))
	}
}

// checkOperands validates the operand count of the selected mode.
func checkOperands(f *flags, args []string) error {
	want := func(n int) error {
		if len(args) != n {
			return errInvalidArgs
		}
		return nil
	}

	switch {
	case f.search, f.print, f.importFile:
		return want(1)
	case f.create:
		return want(2)
	case f.list, f.edit, f.dir, f.stats, f.serve:
		return want(0)
	default:
		if len(args) == 0 {
			return errInvalidArgs
		}
		return nil
	}
}

// classify keeps shortcut file I/O failures fatal; anything else is reported
// to the user.
func classify(err error) error {
	var fe *domain.FileError
	if errors.As(err, &fe) {
		return fatal(err)
	}
	return err
}

func (c *CLI) runImport(a *app.App, file string) error {
	res, err := a.Import(file)
	if err != nil {
		return classify(err)
	}

	fmt.Fprintf(c.Stdout, "Imported %s shortcuts from %s\n",
		color.GreenString("%d", len(res.Imported)), file)
	if len(res.Skipped) > 0 {
		fmt.Fprintf(c.Stdout, "Skipped %d already defined: %s\n",
			len(res.Skipped), strings.Join(res.Skipped, ", "))
	}
	return nil
}

func (c *CLI) runServe(ctx context.Context, a *app.App) error {
	fmt.Fprintf(c.Stdout, "Serving go-links on http://%s/go/<Name> (Ctrl+C to stop)\n", a.ListenAddr())
	return fatal(a.Serve(ctx))
}

func (c *CLI) printVersion() error {
	fmt.Fprintf(c.Stdout, "lc %s\n", version.Version)
	fmt.Fprintf(c.Stdout, "  Git commit: %s\n", version.Commit)
	fmt.Fprintf(c.Stdout, "  Built:      %s\n", version.BuildDate)
	fmt.Fprintf(c.Stdout, "  Go version: %s\n", version.GoVersion)
	return nil
}
