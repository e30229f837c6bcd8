package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/folio/internal/catalog"
	"github.com/MrSnakeDoc/folio/internal/config"
	"github.com/MrSnakeDoc/folio/internal/content"
	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/redis"
	"github.com/MrSnakeDoc/folio/internal/scheduler"
	redisstore "github.com/MrSnakeDoc/folio/internal/store/redis"
	"github.com/MrSnakeDoc/folio/internal/utils"
	"github.com/MrSnakeDoc/folio/internal/version"
	"github.com/MrSnakeDoc/folio/internal/view"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	reloader    *scheduler.CatalogReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis is optional: without an address the page is rendered on every
	// request and no stats are kept.
	var (
		redisClient *goredis.Client
		store       *redisstore.Store
	)
	if cfg.RedisEnabled() {
		client, err := redis.Connect(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("redis unavailable, continuing without page cache and stats",
				logger.Error(err))
		} else {
			redisClient = client
			store = redisstore.NewStore(client)
			loggerClient.Info("Redis initialized successfully")
		}
	} else {
		loggerClient.Info("redis not configured, page cache and stats disabled")
	}

	// Load the catalog - the embedded default panics when broken, a content
	// file fails fast
	loader := content.NewLoader(cfg.ContentFile)
	var (
		snapshot *domain.Catalog
		err      error
	)
	if cfg.ContentFile == "" {
		snapshot = content.Default()
	} else {
		snapshot, err = loader.Load()
		if err != nil {
			loggerClient.Errorf("Failed to load catalog from %s: %v", loader.Source(), err)
			os.Exit(1)
		}
	}
	holder := catalog.NewHolder(snapshot, loader.Source())
	loggerClient.Info("catalog loaded",
		logger.String("source", loader.Source()),
		logger.String("revision", snapshot.Revision),
		logger.Int("projects", len(snapshot.Projects)))

	renderer, err := view.NewRenderer()
	if err != nil {
		loggerClient.Errorf("Failed to parse templates: %v", err)
		os.Exit(1)
	}

	// Only a content file on disk can change, the embedded default cannot.
	var (
		reloader      *scheduler.CatalogReloader
		reloadTrigger chan struct{}
	)
	if cfg.ContentFile != "" {
		reloadTrigger = make(chan struct{}, 1)
		var pages scheduler.PageFlusher
		if store != nil {
			pages = store
		}
		reloader = scheduler.NewCatalogReloader(
			loader,
			holder,
			pages,
			loggerClient,
			cfg.ReloadInterval,
			reloadTrigger,
		)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		Catalog:         holder,
		Renderer:        renderer,
		View: view.Options{
			PublicURL:       cfg.PublicURL,
			AssetsURL:       view.AssetsPath,
			ScrollThreshold: cfg.ScrollThreshold,
			RevealThreshold: cfg.RevealThreshold,
			CopyrightYear:   cfg.CopyrightYear,
		},
		PageCacheTTL:  cfg.PageCacheTTL,
		PublicDir:     cfg.PublicDir,
		ReloadTrigger: reloadTrigger,
	}
	if store != nil {
		d.Store = store
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		reloader:    reloader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting %s on %s", version.String(), a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start catalog reloader: %w", err)
		}
		a.logger.Info("catalog reloader started",
			logger.String("file", a.cfg.ContentFile),
			logger.Duration("interval", a.cfg.ReloadInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.reloader != nil {
		a.reloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		_ = utils.CloseLogged(a.redisClient, "redis", a.logger)
	}

	a.logger.Info("✅ folio stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
