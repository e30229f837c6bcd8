package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready    bool   `json:"ready"`
	Revision string `json:"revision,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Readyz is ready once a catalog snapshot and the templates are loaded.
// Redis is optional and does not affect readiness.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		resp := readyzResponse{Ready: true}
		switch {
		case d.Catalog == nil || d.Catalog.Current() == nil:
			resp = readyzResponse{Reason: "catalog not loaded"}
		case d.Renderer == nil:
			resp = readyzResponse{Reason: "templates not loaded"}
		default:
			resp.Revision = d.Catalog.Revision()
		}

		if resp.Ready {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
