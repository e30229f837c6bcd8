package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/folio/internal/httpserver/mw"
)

func init() { Register(registerCatalog) }

func registerCatalog(r chi.Router, d deps.Deps) {
	r.Group(func(r chi.Router) {
		r.Use(mw.CORS(d.CORSOrigins))
		r.Get("/api/catalog", handlers.Catalog(d))
		// Preflight is answered by the CORS middleware; the route only has to exist.
		r.Options("/api/catalog", handlers.Catalog(d))
	})
}
