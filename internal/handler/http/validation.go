package http

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
)

const (
	maxAuthorizationHeader = 8 << 10
	maxPathLength          = 2 << 10
)

// InputValidation rejects oversized Authorization headers (400) and paths (414)
// before any routing or token parsing happens.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthorizationHeader {
				respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "authorization header too long"})
				return
			}
			if len(r.URL.Path) > maxPathLength {
				respond.JSON(w, http.StatusRequestURITooLong, map[string]string{"error": "request path too long"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
