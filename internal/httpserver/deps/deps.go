package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/folio/internal/catalog"
	"github.com/MrSnakeDoc/folio/internal/logger"
	redisstore "github.com/MrSnakeDoc/folio/internal/store/redis"
	"github.com/MrSnakeDoc/folio/internal/view"
)

// Store is the optional Redis side of the site. *redisstore.Store implements it.
type Store interface {
	Ping(ctx context.Context) error
	IncrementViews(ctx context.Context) error
	IncrementToggles(ctx context.Context, dark bool) error
	GetStats(ctx context.Context) (redisstore.Stats, error)
	CachePage(ctx context.Context, revision, theme string, html []byte, ttl time.Duration) error
	GetCachedPage(ctx context.Context, revision, theme string) ([]byte, error)
}

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time // for testing, defaults to time.Now
	AllowedHosts    []string         // Host headers allowed to access admin endpoints
	AllowedCIDRS    []string         // IPs allowed to access readyz/infra/reload
	TrustProxy      bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CORSOrigins     []string         // Origins allowed to read /api/catalog
	RateLimitBurst  int              // POST burst per client IP
	RateLimitPerMin int              // POST refill per client IP per minute
	Catalog         *catalog.Holder  // Snapshot being served
	Renderer        *view.Renderer   // Page templates
	View            view.Options     // Page build options
	Store           Store            // nil when Redis is disabled
	PageCacheTTL    time.Duration    // TTL of cached pages
	PublicDir       string           // Directory served under View.PublicURL (empty = not served)
	ReloadTrigger   chan struct{}    // Channel to trigger manual catalog reload (nil without a content file)
}

// Now returns the current time through TimeNow when set.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
