package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/utils"
)

// RateLimitConfig configures a per-client token bucket.
type RateLimitConfig struct {
	Burst             int
	RefillPerIPPerMin int
	MaxEntries        int           // client table size that forces an early sweep, 0 = unbounded
	SweepInterval     time.Duration // default 1m
	IdleTTL           time.Duration // default 15m
	TrustProxy        bool          // resolve IP from proxy headers when true
	Logger            logger.Logger
	Now               func() time.Time
}

type tokens struct {
	level    float64
	refilled time.Time
	seen     time.Time
}

// clientLimiter holds one bucket per client IP behind a single lock.
type clientLimiter struct {
	mu        sync.Mutex
	cfg       RateLimitConfig
	perSecond float64
	capacity  float64
	clients   map[string]*tokens
	swept     time.Time
}

func newClientLimiter(cfg RateLimitConfig) *clientLimiter {
	cfg.Burst = max(cfg.Burst, 1)
	cfg.RefillPerIPPerMin = max(cfg.RefillPerIPPerMin, 1)
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 15 * time.Minute
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	return &clientLimiter{
		cfg:       cfg,
		perSecond: float64(cfg.RefillPerIPPerMin) / 60,
		capacity:  float64(cfg.Burst),
		clients:   make(map[string]*tokens),
		swept:     cfg.Now(),
	}
}

// take spends one token for ip. When the bucket is empty it returns the
// whole seconds until the next token.
func (l *clientLimiter) take(ip string, now time.Time) (ok bool, left int, wait int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	full := l.cfg.MaxEntries > 0 && len(l.clients) >= l.cfg.MaxEntries
	if full || now.Sub(l.swept) >= l.cfg.SweepInterval {
		l.evictIdle(now)
	}

	t, found := l.clients[ip]
	if !found {
		t = &tokens{level: l.capacity, refilled: now}
		l.clients[ip] = t
	}
	if dt := now.Sub(t.refilled).Seconds(); dt > 0 {
		t.level = math.Min(l.capacity, t.level+dt*l.perSecond)
		t.refilled = now
	}
	t.seen = now

	if t.level < 1 {
		wait = max(int(math.Ceil((1-t.level)/l.perSecond)), 1)
		return false, 0, wait
	}
	t.level--
	return true, int(t.level), 0
}

func (l *clientLimiter) evictIdle(now time.Time) {
	for ip, t := range l.clients {
		if now.Sub(t.seen) > l.cfg.IdleTTL {
			delete(l.clients, ip)
		}
	}
	l.swept = now
}

// RateLimit answers 429 with Retry-After once a client has spent its burst.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	l := newClientLimiter(cfg)
	limit := strconv.Itoa(l.cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, l.cfg.TrustProxy)
			ok, left, wait := l.take(ip, l.cfg.Now())

			h := w.Header()
			h.Set("X-RateLimit-Limit", limit)
			h.Set("X-RateLimit-Remaining", strconv.Itoa(left))

			if !ok {
				l.cfg.Logger.Warn("rate limit exceeded",
					logger.String("remote_ip", ip),
					logger.String("path", r.URL.Path),
					logger.Int("retry_after", wait))
				h.Set("Retry-After", strconv.Itoa(wait))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
