package ad

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	adUC "newsdesk/internal/usecase/ad"
)

type DeleteHandler struct{ Svc adUC.Service }

// ServeHTTP 広告削除
// @Summary      広告削除
// @Description  admin のみ
// @Tags         ads
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "広告ID"
// @Success      200 {object} messageResponse
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - ad not found"
// @Router       /api/ads/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, adUC.ErrInvalidAdID)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, messageResponse{Message: "ad deleted"})
}
