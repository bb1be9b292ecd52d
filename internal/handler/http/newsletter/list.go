package newsletter

import (
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	nlUC "newsdesk/internal/usecase/newsletter"
)

type ListHandler struct{ Svc nlUC.Service }

// ServeHTTP 購読者一覧
// @Summary      購読者一覧
// @Tags         newsletter
// @Security     BearerAuth
// @Produce      json
// @Param        active query bool false "有効な購読者のみ"
// @Success      200 {object} listResponse
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /api/newsletter/subscribers [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	active, err := request.BoolQuery(r, "active")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	list, err := h.Svc.List(r.Context(), active)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	out := make([]SubscriberDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toDTO(s))
	}
	respond.JSON(w, http.StatusOK, listResponse{Subscribers: out})
}
