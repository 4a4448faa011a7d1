// Package app wires configuration, the shortcut file, the dispatcher and the
// optional usage store, and exposes one method per command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MrSnakeDoc/lc/internal/config"
	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/httpserver"
	"github.com/MrSnakeDoc/lc/internal/httpserver/deps"
	"github.com/MrSnakeDoc/lc/internal/httpserver/metrics"
	"github.com/MrSnakeDoc/lc/internal/launch"
	"github.com/MrSnakeDoc/lc/internal/logger"
	"github.com/MrSnakeDoc/lc/internal/scheduler"
	"github.com/MrSnakeDoc/lc/internal/sources/configfile"
	"github.com/MrSnakeDoc/lc/internal/sources/homepage"
	"github.com/MrSnakeDoc/lc/internal/utils"
	"github.com/MrSnakeDoc/lc/internal/version"
)

type App struct {
	cfg        *config.Config
	logger     logger.Logger
	location   config.Location
	source     *configfile.Source
	dispatcher *launch.Dispatcher
	usage      UsageRecorder

	runner launch.Runner
	out    io.Writer
}

// Option overrides a collaborator, mostly for tests.
type Option func(*App)

// WithLogger replaces the logger built from the configuration.
func WithLogger(l logger.Logger) Option { return func(a *App) { a.logger = l } }

// WithRunner replaces the os/exec process runner.
func WithRunner(r launch.Runner) Option { return func(a *App) { a.runner = r } }

// WithOutput sets where monitored process output goes (default stdout).
func WithOutput(w io.Writer) Option { return func(a *App) { a.out = w } }

// WithUsage replaces the Redis usage store.
func WithUsage(u UsageRecorder) Option { return func(a *App) { a.usage = u } }

// New resolves the configuration directory, creates it and the shortcut file
// when missing, reads settings.toml and connects the usage store.
// Errors returned here are infrastructure failures.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	a := &App{
		cfg:      cfg,
		location: config.NewLocation(cfg.ConfigDir),
		runner:   launch.NewExecRunner(),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.New(cfg.LogLevel, cfg.PrettyLog)
	}

	if err := a.location.Ensure(); err != nil {
		return nil, err
	}
	a.logger.Debug("configuration location",
		logger.String("dir", a.location.Dir),
		logger.String("file", a.location.ShortcutFile()))

	settings, err := config.LoadSettings(a.location.SettingsFile())
	if err != nil {
		return nil, err
	}

	a.source = configfile.NewSource(a.location.ShortcutFile())
	a.dispatcher = launch.NewDispatcher(a.runner, launch.NewOpeners(settings), a.out, a.logger)

	if a.usage == nil {
		a.usage = a.connectUsage(ctx)
	}

	return a, nil
}

// Close releases the usage store and flushes the logger.
func (a *App) Close() error {
	utils.MustClose(a.usage, a.logger, "usage store")
	_ = a.logger.Sync()
	return nil
}

// ShortcutFile is the path of the shortcut file.
func (a *App) ShortcutFile() string {
	return a.source.Path()
}

// Shortcuts reads the shortcut file. Malformed lines are logged and skipped.
func (a *App) Shortcuts() (domain.Configuration, error) {
	cfg, err := a.source.Load()
	if err == nil {
		return cfg, nil
	}

	bad := domain.MalformedLines(err)
	if len(bad) == 0 {
		return nil, err
	}
	for _, b := range bad {
		a.logger.Warn("skipping malformed shortcut line",
			logger.String("file", a.source.Path()),
			logger.Int("line", b.Line),
			logger.String("text", b.Text))
	}
	return cfg, nil
}

// Launch looks name up and launches it. An unknown name yields a
// *domain.NotFoundError carrying suggestions.
func (a *App) Launch(ctx context.Context, name string, args []string, preferDefault bool) error {
	cfg, err := a.Shortcuts()
	if err != nil {
		return err
	}

	shortcut, ok := cfg.Lookup(name)
	if !ok {
		return &domain.NotFoundError{
			Name:        name,
			Suggestions: domain.Suggest(name, cfg, a.usageCounts(ctx)),
		}
	}

	if err := a.dispatcher.Launch(ctx, shortcut.Path, args, preferDefault); err != nil {
		return err
	}

	if err := a.usage.IncrementUsage(ctx, name); err != nil {
		a.logger.Warn("failed to record usage",
			logger.String("name", name),
			logger.Error(err))
	}
	return nil
}

func (a *App) usageCounts(ctx context.Context) map[string]int64 {
	counts, err := a.usage.GetUsageCounts(ctx)
	if err != nil {
		a.logger.Debug("usage counts unavailable", logger.Error(err))
		return nil
	}
	return counts
}

// List returns every shortcut ordered by name.
func (a *App) List() ([]domain.Shortcut, error) {
	cfg, err := a.Shortcuts()
	if err != nil {
		return nil, err
	}
	return cfg.Sorted(), nil
}

// Search returns shortcuts whose name or path matches pattern, case-insensitively.
func (a *App) Search(pattern string) ([]domain.Shortcut, error) {
	cfg, err := a.Shortcuts()
	if err != nil {
		return nil, err
	}
	return domain.Search(cfg, pattern)
}

// Print returns the raw path of name.
func (a *App) Print(name string) (string, error) {
	cfg, err := a.Shortcuts()
	if err != nil {
		return "", err
	}
	shortcut, ok := cfg.Lookup(name)
	if !ok {
		return "", &domain.NotFoundError{Name: name}
	}
	return shortcut.Path, nil
}

// Create appends "name: path" without validation or duplicate check.
func (a *App) Create(name, path string) error {
	return a.source.Append(domain.Shortcut{Name: name, Path: path})
}

// Edit opens the shortcut file with its default program.
func (a *App) Edit(ctx context.Context) error {
	return a.dispatcher.Launch(ctx, a.source.Path(), nil, true)
}

// RevealConfig shows the shortcut file in the file manager.
func (a *App) RevealConfig(ctx context.Context) error {
	return a.dispatcher.Launch(ctx, a.source.Path(), nil, false)
}

// ImportResult reports what an import appended.
type ImportResult struct {
	Imported []domain.Shortcut
	Skipped  []string // names already configured
}

// Import appends the bookmarks of a Homepage bookmarks.yaml as URL shortcuts,
// in one write. Bookmarks whose name is already configured are skipped.
func (a *App) Import(file string) (ImportResult, error) {
	var res ImportResult

	bookmarks, err := homepage.NewLoader(file).Load()
	if err != nil {
		return res, err
	}
	shortcuts, err := homepage.NewMapper().MapShortcuts(bookmarks)
	if err != nil {
		return res, fmt.Errorf("%s: %w", file, err)
	}

	cfg, err := a.Shortcuts()
	if err != nil {
		return res, err
	}

	for _, s := range shortcuts {
		if _, exists := cfg.Lookup(s.Name); exists {
			res.Skipped = append(res.Skipped, s.Name)
			continue
		}
		res.Imported = append(res.Imported, s)
	}

	if err := a.source.Append(res.Imported...); err != nil {
		return ImportResult{}, err
	}

	a.logger.Info("imported homepage bookmarks",
		logger.String("file", file),
		logger.Int("imported", len(res.Imported)),
		logger.Int("skipped", len(res.Skipped)))
	return res, nil
}

// Stats returns launch counters, most used first.
func (a *App) Stats(ctx context.Context) ([]domain.UsageStat, error) {
	return a.usage.GetUsageStats(ctx)
}

// ListenAddr is the address Serve binds.
func (a *App) ListenAddr() string {
	return a.cfg.ListenAddr
}

// Serve runs the go-link server until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	d := deps.Deps{
		Logger:       a.logger,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		AllowedHosts: a.cfg.AllowedHosts,
		AllowedCIDRS: a.cfg.AllowedCIDRS,
		TrustProxy:   a.cfg.TrustProxy,
		RateBurst:    a.cfg.RateBurst,
		RatePerMin:   a.cfg.RatePerMin,
		Shortcuts:    a.source,
		Usage:        a.usage,
		Metrics:      metrics.New(),
	}

	a.logger.Infof("lc %s (commit=%s, built=%s, go=%s) serving go-links on %s",
		version.Version, version.Commit, version.BuildDate, version.GoVersion, a.cfg.ListenAddr)

	if _, disabled := a.usage.(nopUsage); !disabled {
		gc := scheduler.NewGarbageCollector(a.source, a.usage, a.logger,
			a.cfg.UsageGCInterval, a.cfg.UsageGCThreshold)
		gc.Start(ctx)
		defer gc.Stop()
	}

	return httpserver.New(a.cfg, a.logger, d).Run(ctx)
}
