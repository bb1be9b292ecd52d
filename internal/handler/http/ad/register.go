package ad

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	adUC "newsdesk/internal/usecase/ad"
)

// Register wires /api/ads.
func Register(mux *http.ServeMux, svc adUC.Service, guard auth.Guard) {
	mux.Handle("GET /api/ads", ListHandler{svc})
	mux.Handle("GET /api/ads/{id}", GetHandler{svc})
	mux.Handle("POST /api/ads/{id}/click", TrackHandler{Svc: svc, Event: "click"})
	mux.Handle("POST /api/ads/{id}/impression", TrackHandler{Svc: svc, Event: "impression"})

	mux.Handle("POST /api/ads", guard.Auth(CreateHandler{svc}))
	mux.Handle("PUT /api/ads/{id}", guard.Auth(UpdateHandler{svc}))
	mux.Handle("DELETE /api/ads/{id}", guard.Role(DeleteHandler{svc}, entity.RoleAdmin))
}
