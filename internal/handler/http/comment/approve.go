package comment

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	comUC "newsdesk/internal/usecase/comment"
)

type ApproveHandler struct{ Svc comUC.Service }

// ServeHTTP コメント承認
// @Summary      コメント承認
// @Tags         comments
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "コメントID"
// @Success      200 {object} commentResponse
// @Failure      404 {string} string "Not found - comment not found"
// @Router       /api/comments/{id}/approve [put]
func (h ApproveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, comUC.ErrInvalidCommentID)
		return
	}
	c, err := h.Svc.Approve(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, commentResponse{Comment: toDTO(c)})
}
