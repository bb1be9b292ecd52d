package auction

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	aucUC "newsdesk/internal/usecase/auction"
)

// Register wires /api/auctions.
func Register(mux *http.ServeMux, svc aucUC.Service, guard auth.Guard, logger *slog.Logger) {
	mux.Handle("GET /api/auctions", ListHandler{svc})
	mux.Handle("GET /api/auctions/{id}", GetHandler{svc})

	mux.Handle("POST /api/auctions/{id}/bid", guard.Auth(BidHandler{Svc: svc, Logger: logger}))
	mux.Handle("POST /api/auctions", guard.Auth(CreateHandler{svc}))
	mux.Handle("PUT /api/auctions/{id}", guard.Auth(UpdateHandler{svc}))
	mux.Handle("DELETE /api/auctions/{id}", guard.Role(DeleteHandler{svc}, entity.RoleAdmin))
}
