package advertisement

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	advUC "newsdesk/internal/usecase/advertisement"
)

type DeleteHandler struct{ Svc advUC.Service }

// ServeHTTP 求人・広告削除
// @Summary      求人・広告削除
// @Description  admin のみ
// @Tags         advertisements
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "ID"
// @Success      200 {object} messageResponse
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - advertisement not found"
// @Router       /api/advertisements/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, advUC.ErrInvalidAdvertisementID)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, messageResponse{Success: true, Message: "advertisement deleted"})
}
