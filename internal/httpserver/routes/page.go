package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
)

func init() { Register(registerPage) }

func registerPage(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Page(d))
}
