package advertisement

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	advUC "newsdesk/internal/usecase/advertisement"
)

// Register wires /api/advertisements. The literal /featured segment wins over {id}.
func Register(mux *http.ServeMux, svc advUC.Service, guard auth.Guard, cfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /api/advertisements", ListHandler{Svc: svc, PaginationCfg: cfg, Logger: logger})
	mux.Handle("GET /api/advertisements/featured", FeaturedHandler{svc})
	mux.Handle("GET /api/advertisements/{id}", GetHandler{svc})
	mux.Handle("POST /api/advertisements/{id}/view", ViewHandler{svc})
	mux.Handle("POST /api/advertisements/{id}/apply", ApplyHandler{svc})

	mux.Handle("POST /api/advertisements", guard.Auth(CreateHandler{svc}))
	mux.Handle("PUT /api/advertisements/{id}", guard.Auth(UpdateHandler{svc}))
	mux.Handle("DELETE /api/advertisements/{id}", guard.Role(DeleteHandler{svc}, entity.RoleAdmin))
}
