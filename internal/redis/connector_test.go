package redis

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/lc/internal/config"
	"github.com/MrSnakeDoc/lc/internal/logger"
)

func validOptions() ConnectOptions {
	return ConnectOptions{
		Addr:           "127.0.0.1:1",
		DialTimeout:    50 * time.Millisecond,
		ConnectTimeout: 200 * time.Millisecond,
		RetryInterval:  20 * time.Millisecond,
		MaxWait:        50 * time.Millisecond,
		PingTimeout:    50 * time.Millisecond,
		WarnThreshold:  1,
	}
}

func TestConnectOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConnectOptions)
		wantErr bool
	}{
		{"valid", func(*ConnectOptions) {}, false},
		{"empty addr", func(o *ConnectOptions) { o.Addr = "" }, true},
		{"zero connect timeout", func(o *ConnectOptions) { o.ConnectTimeout = 0 }, true},
		{"zero retry interval", func(o *ConnectOptions) { o.RetryInterval = 0 }, true},
		{"zero max wait", func(o *ConnectOptions) { o.MaxWait = 0 }, true},
		{"zero ping timeout", func(o *ConnectOptions) { o.PingTimeout = 0 }, true},
		{"negative warn threshold", func(o *ConnectOptions) { o.WarnThreshold = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			if err := opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewFailsWithinBudget(t *testing.T) {
	opts := validOptions()

	start := time.Now()
	client, err := New(context.Background(), opts, logger.NewNop())
	if err == nil {
		t.Fatal("New() against a closed port should fail")
	}
	if client != nil {
		t.Error("New() should not return a client on failure")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("New() took %v, want roughly ConnectTimeout", elapsed)
	}
}

func TestNewHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(ctx, validOptions(), logger.NewNop()); err == nil {
		t.Error("New() with a cancelled context should fail")
	}
}

func TestNextWait(t *testing.T) {
	tests := []struct {
		wait, max, want time.Duration
	}{
		{100 * time.Millisecond, time.Second, 200 * time.Millisecond},
		{600 * time.Millisecond, time.Second, time.Second},
		{time.Second, time.Second, time.Second},
	}

	for _, tt := range tests {
		if got := nextWait(tt.wait, tt.max); got != tt.want {
			t.Errorf("nextWait(%v, %v) = %v, want %v", tt.wait, tt.max, got, tt.want)
		}
	}
}

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("LC_REDIS_ADDR", "redis:6379")
	t.Setenv("LC_REDIS_DB", "3")

	opts := OptionsFromConfig(config.Load())
	if opts.Addr != "redis:6379" || opts.RedisDB != 3 {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("default options should be valid: %v", err)
	}
}
