// Package auth provides the HTTP side of authentication: the bearer token
// middleware, role checks and the register/login/me endpoints.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	authsvc "newsdesk/internal/service/auth"
)

var (
	errMissingToken = errors.New("missing token")
	errNoPrincipal  = errors.New("missing token: no authenticated principal")
	errForbidden    = errors.New("forbidden: insufficient role")
)

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(token string) (*authsvc.Principal, error)
}

// bearerToken returns the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	const prefix = "bearer "
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(h[len(prefix):])
	return tok, tok != ""
}

// Authz returns middleware that requires a valid HS256 bearer token and
// stores the resulting Principal in the request context.
//
//   - no token → 401 "missing token"
//   - bad signature, wrong algorithm or expired → 401 "invalid or expired token"
func Authz(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, ok := bearerToken(r)
			if !ok {
				RecordTokenRejection("missing")
				w.Header().Set("WWW-Authenticate", `Bearer realm="newsdesk"`)
				respond.SafeError(w, http.StatusUnauthorized, errMissingToken)
				return
			}

			p, err := tokens.Parse(tok)
			if err != nil {
				RecordTokenRejection("invalid")
				w.Header().Set("WWW-Authenticate", `Bearer realm="newsdesk", error="invalid_token"`)
				respond.SafeError(w, http.StatusUnauthorized, authsvc.ErrInvalidToken)
				return
			}

			ctx := authsvc.WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that answers 403 unless the principal holds one
// of roles. It must run behind Authz.
func RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := authsvc.PrincipalFrom(r.Context())
			if p == nil {
				respond.SafeError(w, http.StatusUnauthorized, errNoPrincipal)
				return
			}
			if !p.HasRole(roles...) {
				RecordForbiddenAttempt(string(p.Role), r.Method)
				respond.SafeError(w, http.StatusForbidden, errForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Guard bundles Authz with optional role checks for route registration.
type Guard struct {
	Tokens TokenParser
}

// Auth wraps h with Authz.
func (g Guard) Auth(h http.Handler) http.Handler {
	return Authz(g.Tokens)(h)
}

// Role wraps h with Authz and RequireRole(roles...).
func (g Guard) Role(h http.Handler, roles ...entity.Role) http.Handler {
	return Authz(g.Tokens)(RequireRole(roles...)(h))
}
