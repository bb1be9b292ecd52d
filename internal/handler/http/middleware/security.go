package middleware

import (
	"net/http"
	"strings"
)

// Policy is a Content-Security-Policy under construction. Directives are
// rendered in the order they were first set.
type Policy struct {
	order      []string
	directives map[string][]string
}

// NewPolicy returns an empty policy.
func NewPolicy() *Policy {
	return &Policy{directives: make(map[string][]string)}
}

// Set replaces the sources of directive, e.g. Set("img-src", "'self'", "data:").
func (p *Policy) Set(directive string, sources ...string) *Policy {
	if _, ok := p.directives[directive]; !ok {
		p.order = append(p.order, directive)
	}
	p.directives[directive] = sources
	return p
}

// String renders the header value. Directives without sources are skipped.
func (p *Policy) String() string {
	parts := make([]string, 0, len(p.order))
	for _, d := range p.order {
		if src := p.directives[d]; len(src) > 0 {
			parts = append(parts, d+" "+strings.Join(src, " "))
		}
	}
	return strings.Join(parts, "; ")
}

// StrictPolicy suits JSON and XML responses, which never load subresources.
func StrictPolicy() *Policy {
	return NewPolicy().
		Set("default-src", "'none'").
		Set("connect-src", "'self'").
		Set("frame-ancestors", "'none'").
		Set("base-uri", "'self'").
		Set("form-action", "'self'")
}

// SwaggerUIPolicy lets the bundled Swagger UI run its inline bootstrap script.
func SwaggerUIPolicy() *Policy {
	return NewPolicy().
		Set("default-src", "'self'").
		Set("script-src", "'self'", "'unsafe-inline'").
		Set("style-src", "'self'", "'unsafe-inline'").
		Set("img-src", "'self'", "data:").
		Set("font-src", "'self'", "data:").
		Set("connect-src", "'self'").
		Set("frame-ancestors", "'none'").
		Set("object-src", "'none'")
}

// SecurityHeaders sets CSP and the usual hardening headers. Paths under
// swaggerPrefix get SwaggerUIPolicy, everything else StrictPolicy.
func SecurityHeaders(swaggerPrefix string) func(http.Handler) http.Handler {
	strict := StrictPolicy().String()
	swagger := SwaggerUIPolicy().String()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			csp := strict
			if swaggerPrefix != "" && strings.HasPrefix(r.URL.Path, swaggerPrefix) {
				csp = swagger
			}
			h.Set("Content-Security-Policy", csp)
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			next.ServeHTTP(w, r)
		})
	}
}
