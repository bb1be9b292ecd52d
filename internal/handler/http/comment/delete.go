package comment

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	comUC "newsdesk/internal/usecase/comment"
)

type DeleteHandler struct{ Svc comUC.Service }

// ServeHTTP コメント削除
// @Summary      コメント削除
// @Tags         comments
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "コメントID"
// @Success      200 {object} messageResponse
// @Failure      404 {string} string "Not found - comment not found"
// @Router       /api/comments/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, comUC.ErrInvalidCommentID)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, messageResponse{Message: "comment deleted"})
}
