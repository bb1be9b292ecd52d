package article

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	artUC "newsdesk/internal/usecase/article"
)

// Options carries the settings the article routes need besides the service.
type Options struct {
	Pagination pagination.Config
	SiteURL    string
	FeedTitle  string
	Logger     *slog.Logger
}

// Register wires /api/articles. Reads are public; writes go through guard.
func Register(mux *http.ServeMux, svc artUC.Service, guard auth.Guard, opts Options) {
	mux.Handle("GET /api/articles", ListHandler{Svc: svc, PaginationCfg: opts.Pagination, Logger: opts.Logger})
	mux.Handle("GET /api/articles/breaking/all", BreakingHandler{svc})
	mux.Handle("GET /api/articles/latest", LatestHandler{svc})
	mux.Handle("GET /api/articles/featured", FeaturedHandler{svc})
	mux.Handle("GET /api/articles/search", SearchHandler{svc})
	mux.Handle("GET /api/articles/rss", RSSHandler{Svc: svc, SiteURL: opts.SiteURL, Title: opts.FeedTitle})
	mux.Handle("GET /api/articles/{id}", GetHandler{svc})
	mux.Handle("POST /api/articles/{id}/view", ViewHandler{svc})

	mux.Handle("POST /api/articles", guard.Auth(CreateHandler{svc}))
	mux.Handle("PUT /api/articles/{id}", guard.Auth(UpdateHandler{svc}))
	mux.Handle("DELETE /api/articles/{id}", guard.Role(DeleteHandler{svc}, entity.RoleAdmin, entity.RoleEditor))
}
