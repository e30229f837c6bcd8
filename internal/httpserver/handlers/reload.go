package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/utils"
)

// Reload triggers a manual reload of the content file
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remote := logger.String("remote_ip", utils.ClientIP(r, d.TrustProxy))

		if d.ReloadTrigger == nil {
			d.Logger.Info("reload requested but no content file is configured", remote)
			writeText(w, d, http.StatusConflict, "ℹ️ Serving the embedded catalog, nothing to reload\n")
			return
		}

		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual catalog reload triggered via endpoint", remote)
			writeText(w, d, http.StatusAccepted, "✅ Reload triggered successfully\n")
		default:
			d.Logger.Warn("catalog reload already in progress", remote)
			writeText(w, d, http.StatusTooManyRequests, "⏳ Reload already in progress, please wait\n")
		}
	}
}

func writeText(w http.ResponseWriter, d deps.Deps, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}
