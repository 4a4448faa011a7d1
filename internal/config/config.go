package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// AppDirName is the folder created under the per-user configuration directory.
const AppDirName = "Launcher"

type Config struct {
	ConfigDir string // directory holding Configurations.yaml and settings.toml

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Redis usage tracking (disabled when RedisAddr is empty)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout
	RedisRT             time.Duration // Redis read timeout
	RedisWT             time.Duration // Redis write timeout
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting, kept short for a CLI
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisWarnThreshold  int           // warn after this many attempts
	UsageGCInterval     time.Duration // how often --serve prunes counters of removed shortcuts
	UsageGCThreshold    time.Duration // idle time before such a counter is pruned

	// Go-link server
	ListenAddr      string        // ex: "127.0.0.1:8088"
	ShutdownTimeout time.Duration // ex: 5s
	AllowedCIDRS    []string      // clients allowed to reach the server
	AllowedHosts    []string      // optional, restrict Host headers
	TrustProxy      bool          // true => trust X-Forwarded-For headers
	RateBurst       int           // /go requests per client IP in a burst
	RatePerMin      int           // /go refill per client IP per minute
}

func Load() *Config {
	return &Config{
		ConfigDir: getenv("LC_CONFIG_DIR", defaultConfigDir()),

		// Logging
		LogLevel:  getenv("LC_LOG_LEVEL", "warn"),
		PrettyLog: mustBool("LC_PRETTY_LOG", true),

		// Redis settings
		RedisAddr:           getenv("LC_REDIS_ADDR", ""),
		RedisUser:           getenv("LC_REDIS_USERNAME", ""),
		RedisPassword:       getenv("LC_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("LC_REDIS_DB", 0),
		RedisDT:             mustDuration("LC_REDIS_DIAL_TIMEOUT", time.Second),
		RedisRT:             mustDuration("LC_REDIS_READ_TIMEOUT", time.Second),
		RedisWT:             mustDuration("LC_REDIS_WRITE_TIMEOUT", time.Second),
		RedisPoolSize:       getenvInt("LC_REDIS_POOL_SIZE", 2),
		RedisConnectTimeout: mustDuration("LC_REDIS_CONNECT_TIMEOUT", 2*time.Second),
		RedisRetryInterval:  mustDuration("LC_REDIS_RETRY_INTERVAL", 200*time.Millisecond),
		RedisMaxWait:        mustDuration("LC_REDIS_MAX_WAIT", time.Second),
		RedisPingTimeout:    mustDuration("LC_REDIS_PING_TIMEOUT", 500*time.Millisecond),
		RedisWarnThreshold:  getenvInt("LC_REDIS_WARN_THRESHOLD", 1),
		UsageGCInterval:     mustDuration("LC_USAGE_GC_INTERVAL", 24*time.Hour),
		UsageGCThreshold:    mustDuration("LC_USAGE_GC_THRESHOLD", 30*24*time.Hour),

		// Server settings
		ListenAddr:      getenv("LC_LISTEN_ADDR", "127.0.0.1:8088"),
		ShutdownTimeout: mustDuration("LC_SHUTDOWN_TIMEOUT", 5*time.Second),
		AllowedCIDRS:    splitAndTrim(getenv("LC_ALLOWED_CIDRS", "127.0.0.1/32,::1/128")),
		AllowedHosts:    splitAndTrim(getenv("LC_ALLOWED_HOSTS", "")),
		TrustProxy:      mustBool("LC_TRUST_PROXY", false),
		RateBurst:       getenvInt("LC_RATE_LIMIT_BURST", 20),
		RatePerMin:      getenvInt("LC_RATE_LIMIT_PER_MIN", 60),
	}
}

// UsageTracking reports whether a Redis address is configured.
func (c *Config) UsageTracking() bool {
	return c.RedisAddr != ""
}

// defaultConfigDir is the per-user application-data folder, e.g. %AppData%\Launcher
// on Windows or ~/.config/Launcher on Linux.
func defaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return AppDirName
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppDirName)
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
