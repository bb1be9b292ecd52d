package advertisement

import (
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	advUC "newsdesk/internal/usecase/advertisement"
)

type FeaturedHandler struct{ Svc advUC.Service }

// ServeHTTP 注目の求人・広告
// @Summary      注目の求人・広告
// @Tags         advertisements
// @Produce      json
// @Param        limit query int false "件数（既定 6）"
// @Success      200 {object} dataResponse
// @Router       /api/advertisements/featured [get]
func (h FeaturedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := request.LimitQuery(r, advUC.FeaturedLimit, 100)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	items, err := h.Svc.Featured(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: toDTOs(items)})
}
