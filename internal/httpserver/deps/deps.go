package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/httpserver/metrics"
	"github.com/MrSnakeDoc/lc/internal/logger"
)

// ShortcutSource is re-read on every request; the file on disk is the source of truth.
type ShortcutSource interface {
	Load() (domain.Configuration, error)
	Path() string
}

// UsageRecorder counts redirects. Implementations must tolerate a missing backend.
type UsageRecorder interface {
	IncrementUsage(ctx context.Context, name string) error
	GetUsageCounts(ctx context.Context) (map[string]int64, error)
}

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	AllowedHosts []string         // Host headers allowed to access the server
	AllowedCIDRS []string         // client IPs allowed to access the server
	TrustProxy   bool             // true if running behind a trusted reverse proxy
	RateBurst    int              // go-link requests allowed in a burst per client IP
	RatePerMin   int              // go-link refill rate per client IP
	Shortcuts    ShortcutSource   // shortcut file
	Usage        UsageRecorder    // redirect counters
	Metrics      *metrics.Metrics // prometheus collectors for this server
}
