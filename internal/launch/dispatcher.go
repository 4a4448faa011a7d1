// Package launch turns a shortcut path into the OS action that opens it.
package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/logger"
)

// ErrEmptyCommand is returned for a verbatim shortcut with no program.
var ErrEmptyCommand = errors.New("verbatim shortcut has no command")

type handler func(path string, args []string, preferDefault bool) error

// Dispatcher launches shortcut paths through one handler per ShortcutType.
type Dispatcher struct {
	runner   Runner
	openers  Openers
	out      io.Writer
	log      logger.Logger
	handlers map[domain.ShortcutType]handler
}

// NewDispatcher creates a Dispatcher. Monitored output is written to out.
func NewDispatcher(runner Runner, openers Openers, out io.Writer, log logger.Logger) *Dispatcher {
	d := &Dispatcher{
		runner:  runner,
		openers: openers,
		out:     out,
		log:     log,
	}
	d.handlers = map[domain.ShortcutType]handler{
		domain.Verbatim:     d.launchVerbatim,
		domain.Executable:   d.launchExecutable,
		domain.DiskLocation: d.launchDiskLocation,
		domain.URL:          d.launchURL,
	}
	return d
}

// Launch classifies path once and runs the matching handler.
// Non-verbatim paths must be an existing file or directory, or start with http.
// Only a monitored verbatim launch blocks; it has no timeout.
func (d *Dispatcher) Launch(ctx context.Context, path string, args []string, preferDefault bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	typ := domain.Classify(path)
	if typ != domain.Verbatim {
		if err := validateTarget(path); err != nil {
			return err
		}
	}

	h, ok := d.handlers[typ]
	if !ok {
		d.log.Warn("no launcher for shortcut type",
			logger.String("type", typ.String()),
			logger.String("path", path))
		return nil
	}

	d.log.Debug("launching",
		logger.String("type", typ.String()),
		logger.String("path", path),
		logger.Strings("args", args),
		logger.Bool("prefer_default", preferDefault))

	return h(path, args, preferDefault)
}

func validateTarget(path string) error {
	if strings.HasPrefix(path, domain.URLPrefix) {
		return nil
	}
	// Stat follows symlinks; any existing file or directory qualifies
	if _, err := os.Stat(path); err != nil {
		return &domain.LaunchError{Path: path, Err: err}
	}
	return nil
}

func (d *Dispatcher) launchVerbatim(path string, _ []string, _ bool) error {
	vc := ParseVerbatim(path)
	if vc.Program == "" {
		return &domain.LaunchError{Path: path, Err: ErrEmptyCommand}
	}

	if vc.Monitor {
		return d.runner.Run(vc.Command, d.out)
	}
	return d.start(vc.Command)
}

func (d *Dispatcher) launchExecutable(path string, args []string, _ bool) error {
	return d.start(Command{Program: path, Args: args})
}

func (d *Dispatcher) launchDiskLocation(path string, args []string, preferDefault bool) error {
	if !preferDefault {
		return d.start(d.openers.RevealCommand(path))
	}
	return d.openDefault(path, args)
}

func (d *Dispatcher) launchURL(path string, args []string, _ bool) error {
	return d.openDefault(path, args)
}

func (d *Dispatcher) openDefault(path string, args []string) error {
	cmd, ignored := d.openers.OpenCommand(path, args)
	if len(ignored) > 0 {
		d.log.Warn("default program opener does not take arguments; ignoring them",
			logger.String("opener", cmd.Program),
			logger.Strings("args", ignored))
	}
	return d.start(cmd)
}

func (d *Dispatcher) start(cmd Command) error {
	if err := d.runner.Start(cmd); err != nil {
		return fmt.Errorf("failed to launch %s: %w", cmd.String(), err)
	}
	return nil
}
