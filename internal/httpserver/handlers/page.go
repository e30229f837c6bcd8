package handlers

import (
	"bytes"
	"context"
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/view"
)

// Page renders the portfolio in the theme stored in the visitor's cookie.
// Rendered pages are cached per (revision, theme) when a store is configured;
// any store failure falls back to rendering directly.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snapshot := d.Catalog.Current()
		theme := domain.LoadTheme(view.NewCookieStore(nil, r))

		body := cachedPage(ctx, d, snapshot.Revision, theme.Name())
		if body == nil {
			var buf bytes.Buffer
			if err := d.Renderer.Render(&buf, view.Build(snapshot, theme, d.View)); err != nil {
				d.Logger.Error("failed to render page",
					logger.String("revision", snapshot.Revision),
					logger.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			body = buf.Bytes()
			storePage(ctx, d, snapshot.Revision, theme.Name(), body)
		}

		if d.Store != nil {
			if err := d.Store.IncrementViews(ctx); err != nil {
				d.Logger.Debug("failed to count view", logger.Error(err))
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Vary", "Cookie")
		if r.Method == http.MethodHead {
			return
		}
		if _, err := w.Write(body); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

func cachedPage(ctx context.Context, d deps.Deps, revision, theme string) []byte {
	if d.Store == nil {
		return nil
	}
	body, err := d.Store.GetCachedPage(ctx, revision, theme)
	if err != nil {
		d.Logger.Warn("page cache read failed",
			logger.String("revision", revision),
			logger.Error(err))
		return nil
	}
	return body
}

func storePage(ctx context.Context, d deps.Deps, revision, theme string, body []byte) {
	if d.Store == nil {
		return
	}
	if err := d.Store.CachePage(ctx, revision, theme, body, d.PageCacheTTL); err != nil {
		d.Logger.Warn("page cache write failed",
			logger.String("revision", revision),
			logger.Error(err))
	}
}
