package middlewares

import (
	"net/http"
)

// Cache marks responses as cacheable for an hour. Used for the static
// assets, which only change between releases.
func Cache(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "stale-while-revalidate, max-age=3600")
		handler.ServeHTTP(w, r)
	})
}
