package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/folio/internal/catalog"
	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

// CatalogLoader reads a fresh catalog snapshot.
type CatalogLoader interface {
	Load() (*domain.Catalog, error)
	Source() string
}

// PageFlusher drops rendered pages once the catalog they were built from is gone.
type PageFlusher interface {
	FlushPages(ctx context.Context) error
}

// CatalogReloader handles periodic reloading of the content file
type CatalogReloader struct {
	loader        CatalogLoader
	holder        *catalog.Holder
	pages         PageFlusher
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a new catalog reloader. pages may be nil when
// no page cache is configured.
func NewCatalogReloader(
	loader CatalogLoader,
	holder *catalog.Holder,
	pages PageFlusher,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        loader,
		holder:        holder,
		pages:         pages,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start runs the periodic reload loop. The initial load is done by the
// caller, so the first reload happens after one interval or on a trigger.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	if cr.interval <= 0 {
		return fmt.Errorf("reload interval must be > 0, got %v", cr.interval)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the content file and swaps the served snapshot. On error the
// previous snapshot keeps being served.
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	cr.logger.Debug("reloading catalog",
		logger.String("source", cr.loader.Source()))

	next, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	previous := cr.holder.Revision()
	if !cr.holder.Replace(next) {
		cr.logger.Debug("catalog unchanged",
			logger.String("revision", next.Revision))
		return nil
	}

	cr.logger.Info("catalog reloaded",
		logger.String("previous", previous),
		logger.String("revision", next.Revision),
		logger.Int("projects", len(next.Projects)))

	// Cached pages are keyed by revision; flushing only frees memory early (best effort)
	if cr.pages != nil {
		if err := cr.pages.FlushPages(ctx); err != nil {
			cr.logger.Warn("failed to flush cached pages",
				logger.Error(err))
		}
	}

	return nil
}
