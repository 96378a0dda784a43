package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// TrailingSlashes normalizes the routing path so patterns registered with a
// trailing slash also match the slash-less request form. Only chi's route
// context is rewritten; r.URL.Path is left alone so pagination links echo
// the path the client actually sent.
func TrailingSlashes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())

		path := r.URL.Path
		if rctx != nil && rctx.RoutePath != "" {
			path = rctx.RoutePath
		}

		if len(path) > 1 && !strings.HasSuffix(path, "/") {
			if rctx != nil {
				rctx.RoutePath = path + "/"
			} else {
				r.URL.Path = path + "/"
			}
		}

		next.ServeHTTP(w, r)
	})
}
