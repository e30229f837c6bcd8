package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request budget enforced by chi

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Site
	PublicURL       string        // base URL prefix for photos and video (ex: "/public")
	PublicDir       string        // directory served under PublicURL (empty = not served)
	ContentFile     string        // optional YAML catalog override (empty = embedded default)
	ReloadInterval  time.Duration // how often ContentFile is re-read
	ScrollThreshold int           // pixels scrolled before the nav gets its "scrolled" style
	RevealThreshold float64       // visible fraction that reveals a section element
	CopyrightYear   int           // year printed in the footer
	PageCacheTTL    time.Duration // TTL of rendered pages in Redis

	// Redis (optional)
	RedisAddr             string        // ex: "localhost:6379", empty disables Redis
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => refuse to start without a password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between retries
	RedisPingTimeout      time.Duration // timeout for each ping attempt
	RedisPoolSize         int           // connection pool size
	RedisConnectTimeout   time.Duration // total time to retry connecting
	RedisRetryInterval    time.Duration // initial wait between retries, doubles each attempt
	RedisWarnThreshold    int           // warn after this many attempts

	// Access
	AllowedHosts    []string // optional, restrict admin endpoints to these Host headers
	AllowedCIDRS    []string // optional, restrict admin endpoints to these IPs/CIDRs
	TrustProxy      bool     // true => trust X-Forwarded-For style headers
	CORSOrigins     []string // origins allowed to read /api/catalog
	RateLimitBurst  int      // POST burst per client IP
	RateLimitPerMin int      // POST refill per client IP per minute
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Load reads an optional .env file, then the process environment.
func Load() *Config {
	// A missing .env is the normal case in containers.
	_ = godotenv.Load()

	cfg := &Config{
		ListenPort:      getenv("FOLIO_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("FOLIO_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("FOLIO_REQUEST_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("FOLIO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FOLIO_PRETTY_LOG", true),

		PublicURL:       normalizeBase(getenv("FOLIO_PUBLIC_URL", "/public")),
		PublicDir:       getenv("FOLIO_PUBLIC_DIR", "./public"),
		ContentFile:     getenv("FOLIO_CONTENT_FILE", ""),
		ReloadInterval:  mustDuration("FOLIO_RELOAD_INTERVAL", time.Hour),
		ScrollThreshold: getenvInt("FOLIO_SCROLL_THRESHOLD", 50),
		RevealThreshold: getenvFloat("FOLIO_REVEAL_THRESHOLD", 0.12),
		CopyrightYear:   getenvInt("FOLIO_COPYRIGHT_YEAR", 2026),
		PageCacheTTL:    mustDuration("FOLIO_PAGE_CACHE_TTL", 10*time.Minute),

		RedisAddr:             getenv("FOLIO_REDIS_ADDR", ""),
		RedisUser:             getenv("FOLIO_REDIS_USERNAME", ""),
		RedisPassword:         getenv("FOLIO_REDIS_PASSWORD", ""),
		RedisPasswordRequired: mustBool("FOLIO_REDIS_PASSWORD_REQUIRED", false),
		RedisDB:               getenvInt("FOLIO_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		AllowedHosts:    splitAndTrim(getenv("FOLIO_ALLOWED_HOSTS", "")),
		AllowedCIDRS:    splitAndTrim(getenv("FOLIO_ALLOWED_CIDRS", "")),
		TrustProxy:      mustBool("FOLIO_TRUST_PROXY", false),
		CORSOrigins:     splitAndTrim(getenv("FOLIO_CORS_ORIGINS", "*")),
		RateLimitBurst:  getenvInt("FOLIO_RATE_LIMIT_BURST", 20),
		RateLimitPerMin: getenvInt("FOLIO_RATE_LIMIT_PER_MIN", 30),
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}

	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// Validate rejects combinations the server cannot run with.
func (c *Config) Validate() error {
	if c.RedisEnabled() && c.RedisPasswordRequired && c.RedisPassword == "" {
		return fmt.Errorf("FOLIO_REDIS_PASSWORD is required when FOLIO_REDIS_PASSWORD_REQUIRED=true")
	}
	if c.RevealThreshold <= 0 || c.RevealThreshold > 1 {
		return fmt.Errorf("FOLIO_REVEAL_THRESHOLD must be in (0, 1], got %v", c.RevealThreshold)
	}
	if c.ScrollThreshold < 0 {
		return fmt.Errorf("FOLIO_SCROLL_THRESHOLD must be >= 0, got %d", c.ScrollThreshold)
	}
	if c.ContentFile != "" && c.ReloadInterval <= 0 {
		return fmt.Errorf("FOLIO_RELOAD_INTERVAL must be > 0 when FOLIO_CONTENT_FILE is set")
	}
	return nil
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

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// normalizeBase strips trailing slashes so asset URLs can be joined with "/".
// "/" and "" both mean the site root.
func normalizeBase(base string) string {
	base = strings.TrimSpace(base)
	base = strings.TrimRight(base, "/")
	return base
}
