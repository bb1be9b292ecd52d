package auction

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	aucUC "newsdesk/internal/usecase/auction"
)

type DeleteHandler struct{ Svc aucUC.Service }

// ServeHTTP オークション削除
// @Summary      オークション削除
// @Description  admin のみ。入札履歴も削除されます
// @Tags         auctions
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "オークションID"
// @Success      200 {object} successResponse
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - auction not found"
// @Router       /api/auctions/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, aucUC.ErrInvalidAuctionID)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, successResponse{Success: true})
}
