package routes

import (
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/folio/internal/view"
)

func init() { Register(registerAssets) }

func registerAssets(r chi.Router, d deps.Deps) {
	assets := d.View.AssetsURL
	if !isLocalPath(assets) {
		assets = view.AssetsPath
	}
	r.Handle(assets+"/*", handlers.Assets(assets))

	// Public files are only served locally when PublicURL is a path on this host.
	if d.PublicDir == "" || !isLocalPath(d.View.PublicURL) {
		d.Logger.Debugf("public directory not served (dir=%q, url=%q)", d.PublicDir, d.View.PublicURL)
		return
	}
	r.Handle(d.View.PublicURL+"/*", handlers.Public(d.View.PublicURL, d.PublicDir))
}

func isLocalPath(u string) bool {
	return strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") && len(u) > 1
}
