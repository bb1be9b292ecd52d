package auth

import (
	"log/slog"
	"net/http"

	authUC "newsdesk/internal/usecase/auth"
)

// Register wires /api/auth. limit wraps the credential endpoints (per-IP rate limiter);
// it may be nil.
func Register(mux *http.ServeMux, svc authUC.Service, guard Guard, limit func(http.Handler) http.Handler, logger *slog.Logger) {
	if limit == nil {
		limit = func(h http.Handler) http.Handler { return h }
	}
	mux.Handle("POST /api/auth/register", limit(RegisterHandler{Svc: svc, Logger: logger}))
	mux.Handle("POST /api/auth/login", limit(LoginHandler{Svc: svc, Logger: logger}))
	mux.Handle("GET /api/auth/me", guard.Auth(MeHandler{Svc: svc}))
}
