package category

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	catUC "newsdesk/internal/usecase/category"
)

// Register wires /api/categories. GET /{key} takes a slug; PUT and DELETE take an id.
func Register(mux *http.ServeMux, svc catUC.Service, guard auth.Guard) {
	mux.Handle("GET /api/categories", ListHandler{svc})
	mux.Handle("GET /api/categories/{key}", BySlugHandler{svc})
	mux.Handle("POST /api/categories", guard.Auth(CreateHandler{svc}))
	mux.Handle("PUT /api/categories/{key}", guard.Auth(UpdateHandler{svc}))
	mux.Handle("DELETE /api/categories/{key}", guard.Role(DeleteHandler{svc}, entity.RoleAdmin))
}
