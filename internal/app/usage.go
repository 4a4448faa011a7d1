package app

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/logger"
	"github.com/MrSnakeDoc/lc/internal/redis"
	redisstore "github.com/MrSnakeDoc/lc/internal/store/redis"
)

// ErrUsageDisabled is returned by Stats when no usage store is configured.
var ErrUsageDisabled = errors.New("usage tracking is disabled (set LC_REDIS_ADDR)")

// UsageRecorder stores launch counters.
type UsageRecorder interface {
	IncrementUsage(ctx context.Context, name string) error
	GetUsageStats(ctx context.Context) ([]domain.UsageStat, error)
	GetUsageCounts(ctx context.Context) (map[string]int64, error)
	DeleteUsage(ctx context.Context, name string) error
	Close() error
}

// nopUsage is used when Redis is not configured or unreachable.
type nopUsage struct{}

func (nopUsage) IncrementUsage(context.Context, string) error { return nil }

func (nopUsage) GetUsageStats(context.Context) ([]domain.UsageStat, error) {
	return nil, ErrUsageDisabled
}

func (nopUsage) GetUsageCounts(context.Context) (map[string]int64, error) { return nil, nil }

func (nopUsage) DeleteUsage(context.Context, string) error { return nil }

func (nopUsage) Close() error { return nil }

// connectUsage returns the Redis usage store, or the no-op recorder when
// Redis is not configured or cannot be reached within the connect budget.
func (a *App) connectUsage(ctx context.Context) UsageRecorder {
	if !a.cfg.UsageTracking() {
		return nopUsage{}
	}

	client, err := redis.New(ctx, redis.OptionsFromConfig(a.cfg), a.logger)
	if err != nil {
		a.logger.Warn("usage tracking disabled, redis unavailable",
			logger.String("addr", a.cfg.RedisAddr),
			logger.Error(err))
		return nopUsage{}
	}
	return redisstore.NewStore(client)
}
