package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	redisstore "github.com/MrSnakeDoc/folio/internal/store/redis"
)

type componentStatus struct {
	OK             bool              `json:"ok"`
	ProjectsLoaded *int              `json:"projects_loaded,omitempty"`
	ProjectsLive   *int              `json:"projects_live,omitempty"`
	Revision       string            `json:"revision,omitempty"`
	Source         string            `json:"source,omitempty"`
	LastReload     string            `json:"last_reload,omitempty"`
	Reloads        *int              `json:"reloads,omitempty"`
	Mode           string            `json:"mode,omitempty"`
	Impact         string            `json:"impact,omitempty"`
	Error          string            `json:"error,omitempty"`
	Stats          *redisstore.Stats `json:"stats,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

// Infra reports the state of the catalog and the optional Redis store.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")

		components := map[string]componentStatus{
			"catalog": checkCatalog(d),
			"redis":   checkRedis(r.Context(), d),
		}

		response := infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func checkCatalog(d deps.Deps) componentStatus {
	snapshot := d.Catalog.Current()
	if snapshot == nil {
		return componentStatus{OK: false, Error: "no snapshot"}
	}

	projects := len(snapshot.Projects)
	live := len(snapshot.LiveProjects())
	reloads := d.Catalog.Reloads()
	lastReload := "never"
	if t := d.Catalog.LastReload(); !t.IsZero() {
		lastReload = t.Format("2006-01-02 15:04:05")
	}

	return componentStatus{
		OK:             true,
		ProjectsLoaded: &projects,
		ProjectsLive:   &live,
		Revision:       snapshot.Revision,
		Source:         d.Catalog.Source(),
		LastReload:     lastReload,
		Reloads:        &reloads,
	}
}

func determineServingMode(components map[string]componentStatus) string {
	if c, exists := components["catalog"]; !exists || !c.OK {
		return "critical" // nothing to render
	}

	// Redis down = pages rendered on every request, no stats
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "direct"
	}

	return "cached"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "page-cache-and-stats-disabled",
			Error:  "not configured",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "page-cache-and-stats-disabled",
			Error:  "unreachable",
		}
	}

	status := componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "page-cache-and-stats-enabled",
	}
	if stats, err := d.Store.GetStats(ctx); err == nil {
		status.Stats = &stats
	}
	return status
}
