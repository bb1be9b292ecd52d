package newsletter

import (
	"net/http"

	"newsdesk/internal/handler/http/auth"
	nlUC "newsdesk/internal/usecase/newsletter"
)

func Register(mux *http.ServeMux, svc nlUC.Service, guard auth.Guard) {
	mux.Handle("POST /api/newsletter/subscribe", SubscribeHandler{svc})
	mux.Handle("POST /api/newsletter/unsubscribe", UnsubscribeHandler{svc})
	mux.Handle("GET /api/newsletter/subscribers", guard.Auth(ListHandler{svc}))
}
