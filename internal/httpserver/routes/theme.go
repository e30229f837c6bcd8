package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/folio/internal/httpserver/mw"
)

func init() { Register(registerTheme) }

func registerTheme(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(rateLimitConfig(d))).Post("/theme", handlers.Theme(d))
}
