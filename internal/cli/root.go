// Package cli maps the lc command line onto the app package.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/lc/internal/app"
	"github.com/MrSnakeDoc/lc/internal/config"
)

// CLI holds the streams and the App factory of one invocation.
type CLI struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewApp builds the App once a command needs it. Help, version and
	// argument errors never call it.
	NewApp func(ctx context.Context) (*app.App, error)
}

// New returns a CLI on the process streams, configured from the environment.
func New() *CLI {
	c := &CLI{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	c.NewApp = func(ctx context.Context) (*app.App, error) {
		return app.New(ctx, config.Load(), app.WithOutput(c.Stdout))
	}
	return c
}

// Execute runs lc with args (without the program name) and returns the
// process exit code.
func Execute(ctx context.Context, args []string) int {
	return New().Run(ctx, args)
}

// Run parses args, runs the selected mode and reports its outcome.
// User-level failures are printed on stdout and exit 0; infrastructure
// failures are printed on stderr and exit 1.
func (c *CLI) Run(ctx context.Context, args []string) int {
	// cobra falls back to os.Args when given nil.
	args = append([]string{}, args...)
	if len(args) > 0 && strings.HasPrefix(args[0], "-") {
		args[0] = strings.ToLower(args[0])
	}

	root := c.newRootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var fe *fatalError
	if errors.As(err, &fe) {
		fmt.Fprintln(c.Stderr, color.HiRedString("Error: %v", fe.err))
		return 1
	}
	c.printUserError(err)
	return 0
}

func (c *CLI) newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "lc [flags] <Name> [<Arguments>...]",
		Short:         "Launch shortcuts by name",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, &f, args)
		},
	}
	cmd.SetOut(c.Stdout)
	cmd.SetErr(c.Stderr)
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText)
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: "Invalid argument: " + flagName(err)}
	})

	fs := cmd.Flags()
	fs.SetInterspersed(false)
	fs.BoolVarP(&f.open, "open", "o", false, "open with the default program")
	fs.BoolVarP(&f.list, "list", "l", false, "list shortcuts")
	fs.BoolVarP(&f.search, "search", "s", false, "search names and paths")
	fs.BoolVarP(&f.print, "print", "p", false, "print the path of a shortcut")
	fs.BoolVarP(&f.create, "create", "c", false, "append a shortcut")
	fs.BoolVarP(&f.edit, "edit", "e", false, "edit the shortcut file")
	fs.BoolVarP(&f.dir, "dir", "d", false, "reveal the configuration folder")
	fs.BoolVar(&f.importFile, "import", false, "import Homepage bookmarks")
	fs.BoolVar(&f.stats, "stats", false, "show launch counters")
	fs.BoolVar(&f.serve, "serve", false, "run the go-link server")
	fs.BoolVar(&f.version, "version", false, "print version information")
	fs.StringVarP(&f.format, "format", "f", formatTable, "output format: table, json or yaml")

	return cmd
}

// flagName recovers the offending argument from a pflag parse error.
func flagName(err error) string {
	msg := err.Error()
	if _, arg, ok := strings.Cut(msg, " in "); ok {
		return arg
	}
	if _, arg, ok := strings.Cut(msg, ": "); ok {
		return arg
	}
	return msg
}
