package newsletter

import (
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	nlUC "newsdesk/internal/usecase/newsletter"
)

type SubscribeHandler struct{ Svc nlUC.Service }

// ServeHTTP ニュースレター登録
// @Summary      ニュースレター登録
// @Description  既存の購読者は再有効化されます
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body body subscribeRequest true "メールアドレス"
// @Success      201 {object} messageResponse
// @Failure      400 {string} string "Bad request - invalid email"
// @Router       /api/newsletter/subscribe [post]
func (h SubscribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := h.Svc.Subscribe(r.Context(), req.Email, req.Name); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, messageResponse{Message: "subscribed to newsletter"})
}

type UnsubscribeHandler struct{ Svc nlUC.Service }

// ServeHTTP ニュースレター解除
// @Summary      ニュースレター解除
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body body unsubscribeRequest true "メールアドレス"
// @Success      200 {object} messageResponse
// @Failure      404 {string} string "Not found - subscriber not found"
// @Router       /api/newsletter/unsubscribe [post]
func (h UnsubscribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Unsubscribe(r.Context(), req.Email); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, messageResponse{Message: "unsubscribed from newsletter"})
}
