// Package scheduler runs the periodic jobs of the go-link server.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/logger"
)

const (
	// DefaultGCInterval is how often counters are checked.
	DefaultGCInterval = 24 * time.Hour

	// DefaultGCThreshold is how long a counter of a removed shortcut is kept
	DefaultGCThreshold = 30 * 24 * time.Hour // 30 days
)

// ShortcutSource reads the current shortcut file.
type ShortcutSource interface {
	Load() (domain.Configuration, error)
}

// UsageStore lists and deletes launch counters.
type UsageStore interface {
	GetUsageStats(ctx context.Context) ([]domain.UsageStat, error)
	DeleteUsage(ctx context.Context, name string) error
}

// GarbageCollector deletes counters of shortcuts that are no longer defined
// and have not been launched for longer than the threshold.
type GarbageCollector struct {
	source    ShortcutSource
	store     UsageStore
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	now       func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewGarbageCollector creates a new garbage collector
func NewGarbageCollector(
	source ShortcutSource,
	store UsageStore,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
) *GarbageCollector {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	if threshold <= 0 {
		threshold = DefaultGCThreshold
	}

	return &GarbageCollector{
		source:    source,
		store:     store,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

// Start runs one collection, then one per interval until Stop or ctx is done.
func (gc *GarbageCollector) Start(ctx context.Context) {
	if _, err := gc.Collect(ctx); err != nil {
		gc.logger.Warn("initial usage garbage collection failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := gc.Collect(ctx); err != nil {
					gc.logger.Error("usage garbage collection failed",
						logger.Error(err))
				}
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the garbage collector. It is safe to call more than once.
func (gc *GarbageCollector) Stop() {
	gc.stopOnce.Do(func() { close(gc.stopCh) })
}

// Collect deletes stale counters and returns the names it removed.
// Nothing is deleted when the shortcut file cannot be read.
func (gc *GarbageCollector) Collect(ctx context.Context) ([]string, error) {
	cfg, err := gc.source.Load()
	if cfg == nil {
		return nil, err
	}
	// malformed lines only drop those lines; the rest is still authoritative

	stats, err := gc.store.GetUsageStats(ctx)
	if err != nil {
		return nil, err
	}

	now := gc.now()
	var deleted []string
	for _, s := range stats {
		if _, ok := cfg.Lookup(s.Name); ok {
			continue
		}
		// counters without a timestamp predate last-used tracking; keep them
		if s.LastUsed.IsZero() || now.Sub(s.LastUsed) < gc.threshold {
			continue
		}

		if err := gc.store.DeleteUsage(ctx, s.Name); err != nil {
			gc.logger.Warn("failed to delete usage counter",
				logger.String("name", s.Name),
				logger.Error(err))
			continue
		}
		gc.logger.Info("garbage collected usage counter",
			logger.String("name", s.Name),
			logger.Int64("count", s.Count),
			logger.String("unused_for", now.Sub(s.LastUsed).Round(time.Hour).String()))
		deleted = append(deleted, s.Name)
	}

	if len(deleted) == 0 {
		gc.logger.Debug("no usage counters to garbage collect")
	}
	return deleted, nil
}
