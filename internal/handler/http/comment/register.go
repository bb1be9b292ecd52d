package comment

import (
	"net/http"

	"newsdesk/internal/handler/http/auth"
	comUC "newsdesk/internal/usecase/comment"
)

// Register wires the public comment route and the authenticated moderation queue.
func Register(mux *http.ServeMux, svc comUC.Service, guard auth.Guard) {
	mux.Handle("POST /api/articles/{id}/comments", CreateHandler{svc})

	mux.Handle("GET /api/comments", guard.Auth(ListHandler{svc}))
	mux.Handle("PUT /api/comments/{id}/approve", guard.Auth(ApproveHandler{svc}))
	mux.Handle("DELETE /api/comments/{id}", guard.Auth(DeleteHandler{svc}))
}
