package article

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type ViewHandler struct{ Svc artUC.Service }

// ServeHTTP 閲覧数加算
// @Summary      閲覧数加算
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} successResponse
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Not found - article not found"
// @Router       /api/articles/{id}/view [post]
func (h ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, artUC.ErrInvalidArticleID)
		return
	}
	if err := h.Svc.View(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, successResponse{Success: true})
}
