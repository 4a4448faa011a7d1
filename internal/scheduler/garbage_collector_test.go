package scheduler

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/logger"
)

type fakeSource struct {
	cfg domain.Configuration
	err error
}

func (f fakeSource) Load() (domain.Configuration, error) { return f.cfg, f.err }

type fakeStore struct {
	stats   []domain.UsageStat
	deleted []string
}

func (f *fakeStore) GetUsageStats(context.Context) ([]domain.UsageStat, error) {
	return f.stats, nil
}

func (f *fakeStore) DeleteUsage(_ context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	return nil
}

func TestGarbageCollector_Collect(t *testing.T) {
	log := logger.New("error", false)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cfg := domain.Configuration{
		"Active": {Name: "Active", Path: "https://example.com"},
	}
	store := &fakeStore{stats: []domain.UsageStat{
		{Name: "Active", Count: 9, LastUsed: now.Add(-90 * 24 * time.Hour)},
		{Name: "RecentlyRemoved", Count: 4, LastUsed: now.Add(-10 * 24 * time.Hour)},
		{Name: "OldRemoved", Count: 2, LastUsed: now.Add(-35 * 24 * time.Hour)},
		{Name: "NoTimestamp", Count: 1},
	}}

	gc := NewGarbageCollector(fakeSource{cfg: cfg}, store, log, time.Hour, 30*24*time.Hour)
	gc.now = func() time.Time { return now }

	deleted, err := gc.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if !slices.Equal(deleted, []string{"OldRemoved"}) {
		t.Errorf("Collect() deleted %v, want [OldRemoved]", deleted)
	}
	if !slices.Equal(store.deleted, deleted) {
		t.Errorf("store deleted %v, want %v", store.deleted, deleted)
	}
}

func TestGarbageCollector_UnreadableFileDeletesNothing(t *testing.T) {
	store := &fakeStore{stats: []domain.UsageStat{
		{Name: "Old", Count: 1, LastUsed: time.Now().Add(-365 * 24 * time.Hour)},
	}}
	src := fakeSource{err: errors.New("permission denied")}

	gc := NewGarbageCollector(src, store, logger.NewNop(), 0, 0)
	if _, err := gc.Collect(context.Background()); err == nil {
		t.Error("Collect() should report the read failure")
	}
	if len(store.deleted) != 0 {
		t.Errorf("Collect() deleted %v with an unreadable file", store.deleted)
	}
}

func TestGarbageCollector_MalformedLinesStillCount(t *testing.T) {
	cfg := domain.Configuration{"Kept": {Name: "Kept", Path: "x"}}
	src := fakeSource{cfg: cfg, err: &domain.MalformedLineError{Line: 3, Text: "broken"}}
	store := &fakeStore{stats: []domain.UsageStat{
		{Name: "Kept", Count: 1, LastUsed: time.Now().Add(-365 * 24 * time.Hour)},
	}}

	gc := NewGarbageCollector(src, store, logger.NewNop(), 0, 0)
	deleted, err := gc.Collect(context.Background())
	if err != nil || len(deleted) != 0 {
		t.Errorf("Collect() = (%v, %v), want nothing deleted", deleted, err)
	}
}

func TestGarbageCollector_StopIsIdempotent(t *testing.T) {
	gc := NewGarbageCollector(fakeSource{cfg: domain.Configuration{}}, &fakeStore{}, logger.NewNop(), time.Hour, 0)
	gc.Start(context.Background())
	gc.Stop()
	gc.Stop()
}
