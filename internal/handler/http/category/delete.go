package category

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type DeleteHandler struct{ Svc catUC.Service }

// ServeHTTP カテゴリ削除
// @Summary      カテゴリ削除
// @Description  admin のみ
// @Tags         categories
// @Security     BearerAuth
// @Produce      json
// @Param        key path int true "カテゴリID"
// @Success      200 {object} messageResponse
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - category not found"
// @Router       /api/categories/{key} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "key")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, catUC.ErrInvalidCategoryID)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, messageResponse{Message: "category deleted"})
}
