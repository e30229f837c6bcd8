package mw

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS lets browsers on the given origins read public JSON endpoints.
// An empty list behaves like "*".
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         600,
		Debug:          false,
	}).Handler
}
