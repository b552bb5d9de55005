package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// fileServer serves the files of root under path. Directory listings
// are not served.
func fileServer(router chi.Router, path string, root http.FileSystem) {
	pattern := strings.TrimSuffix(path, "/") + "/*"
	files := http.StripPrefix(strings.TrimSuffix(pattern, "/*"), http.FileServer(root))

	router.Get(pattern, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		const staticMaxAge = "public, max-age=3600"
		w.Header().Set("Cache-Control", staticMaxAge)
		files.ServeHTTP(w, r)
	})
}
