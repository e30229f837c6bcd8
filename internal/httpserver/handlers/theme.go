package handlers

import (
	"net/http"
	"net/url"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/view"
)

// themeFallbackTarget is where the toggle form lands without a usable Referer.
const themeFallbackTarget = "/#home"

// Theme flips the visitor's theme, persists it in the cookie and sends the
// browser back to the page. This is the path taken when the script is not
// running; folio.js handles the toggle in place otherwise.
func Theme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme := domain.LoadTheme(view.NewCookieStore(w, r))
		if err := theme.Toggle(); err != nil {
			// The flag still flipped; only persistence failed.
			d.Logger.Warn("failed to persist theme", logger.Error(err))
		}

		if d.Store != nil {
			if err := d.Store.IncrementToggles(r.Context(), theme.Dark()); err != nil {
				d.Logger.Debug("failed to count toggle", logger.Error(err))
			}
		}

		d.Logger.Debug("theme toggled", logger.String("theme", theme.Name()))
		http.Redirect(w, r, redirectTarget(r), http.StatusSeeOther)
	}
}

// redirectTarget returns the Referer path when it points back at this host,
// otherwise the top of the page.
func redirectTarget(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return themeFallbackTarget
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host != r.Host || u.Path == "" || u.Path[0] != '/' {
		return themeFallbackTarget
	}
	if len(u.Path) > 1 && u.Path[1] == '/' {
		return themeFallbackTarget
	}
	target := u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}
