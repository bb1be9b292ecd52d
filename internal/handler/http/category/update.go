package category

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type UpdateHandler struct{ Svc catUC.Service }

// ServeHTTP カテゴリ更新
// @Summary      カテゴリ更新
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        key      path int           true "カテゴリID"
// @Param        category body updateRequest true "更新内容"
// @Success      200 {object} categoryResponse
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - category not found"
// @Failure      409 {string} string "Conflict - duplicate name or slug"
// @Router       /api/categories/{key} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "key")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, catUC.ErrInvalidCategoryID)
		return
	}

	var req updateRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Update(r.Context(), catUC.UpdateInput{
		ID:           id,
		Name:         req.Name,
		NameRw:       req.NameRw,
		Slug:         req.Slug,
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, categoryResponse{Category: toDTO(c)})
}
