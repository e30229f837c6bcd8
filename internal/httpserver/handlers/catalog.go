package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

// Catalog returns the snapshot being served as JSON.
func Catalog(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := d.Catalog.Current()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("ETag", `"`+snapshot.Revision+`"`)

		if match := r.Header.Get("If-None-Match"); match != "" && match == `"`+snapshot.Revision+`"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}
