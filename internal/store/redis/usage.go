// Package redis stores shortcut launch counters in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Store handles Redis operations for usage counters
type Store struct {
	client *redis.Client
	now    func() time.Time
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		now:    time.Now,
	}
}

// IncrementUsage counts one launch of name and records when it happened.
func (s *Store) IncrementUsage(ctx context.Context, name string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, UsageKey(name))
		pipe.Set(ctx, LastUsedKey(name), s.now().UTC().Format(time.RFC3339), 0)
		pipe.SAdd(ctx, AllUsageKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}
	return nil
}

// GetUsageStats retrieves usage statistics for every counted name,
// most used first.
func (s *Store) GetUsageStats(ctx context.Context) ([]domain.UsageStat, error) {
	names, err := s.client.SMembers(ctx, AllUsageKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get usage names: %w", err)
	}
	if len(names) == 0 {
		return []domain.UsageStat{}, nil
	}

	counts := make([]*redis.StringCmd, len(names))
	lasts := make([]*redis.StringCmd, len(names))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, name := range names {
			counts[i] = pipe.Get(ctx, UsageKey(name))
			lasts[i] = pipe.Get(ctx, LastUsedKey(name))
		}
		return nil
	})
	// redis.Nil from a single GET is not fatal; it is checked per command below
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get usage counters: %w", err)
	}

	stats := make([]domain.UsageStat, 0, len(names))
	for i, name := range names {
		count, err := counts[i].Int64()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to read counter for %s: %w", name, err)
		}

		stat := domain.UsageStat{Name: name, Count: count}
		if raw, err := lasts[i].Result(); err == nil {
			if ts, perr := time.Parse(time.RFC3339, raw); perr == nil {
				stat.LastUsed = ts
			}
		}
		stats = append(stats, stat)
	}

	domain.SortUsage(stats)
	return stats, nil
}

// GetUsageCounts returns launch counts keyed by name.
func (s *Store) GetUsageCounts(ctx context.Context) (map[string]int64, error) {
	stats, err := s.GetUsageStats(ctx)
	if err != nil {
		return nil, err
	}
	return domain.UsageCounts(stats), nil
}

// DeleteUsage removes the counter and timestamp of name.
func (s *Store) DeleteUsage(ctx context.Context, name string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, UsageKey(name), LastUsedKey(name))
		pipe.SRem(ctx, AllUsageKey(), name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete usage: %w", err)
	}
	return nil
}

// Close releases the Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
