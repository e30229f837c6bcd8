package handlers

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/folio/internal/view"
)

// Assets serves the embedded stylesheet and script under prefix.
func Assets(prefix string) http.Handler {
	fs := http.FileServer(http.FS(view.Static()))
	return http.StripPrefix(prefix, noListing(cacheFor(fs, "public, max-age=3600")))
}

// Public serves the photo, about image and video from dir under prefix.
// Missing files answer 404; the page swaps in its fallbacks on the client.
func Public(prefix, dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.StripPrefix(prefix, noListing(cacheFor(fs, "public, max-age=86400")))
}

func cacheFor(next http.Handler, value string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", value)
		next.ServeHTTP(w, r)
	})
}

// noListing hides directory indexes.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
