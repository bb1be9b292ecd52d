package advertisement

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	advUC "newsdesk/internal/usecase/advertisement"
)

type GetHandler struct{ Svc advUC.Service }

// ServeHTTP 求人・広告詳細
// @Summary      求人・広告詳細
// @Tags         advertisements
// @Produce      json
// @Param        id path int true "ID"
// @Success      200 {object} dataResponse
// @Failure      404 {string} string "Not found - advertisement not found"
// @Router       /api/advertisements/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, advUC.ErrInvalidAdvertisementID)
		return
	}
	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: toDTO(a)})
}
