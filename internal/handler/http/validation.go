package http

import (
	"errors"
	"net/http"

	"butuhkidul/internal/handler/http/respond"
)

const (
	maxPathLength  = 2048
	maxQueryLength = 1024
)

var (
	errMethodNotAllowed = errors.New("method not allowed, must be GET or HEAD")
	errURITooLong       = errors.New("invalid request: URI too long")
)

// InputValidation returns middleware that rejects requests the read-only
// page API never serves: non GET/HEAD methods, and oversized paths or
// query strings.
func InputValidation() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				w.Header().Set("Allow", "GET, HEAD")
				respond.SafeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
				return
			}

			if len(r.URL.Path) > maxPathLength || len(r.URL.RawQuery) > maxQueryLength {
				respond.SafeError(w, http.StatusRequestURITooLong, errURITooLong)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
