package category

import (
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type CreateHandler struct{ Svc catUC.Service }

// ServeHTTP カテゴリ作成
// @Summary      カテゴリ作成
// @Description  slug を省略した場合は name から生成します
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body createRequest true "カテゴリ情報"
// @Success      201 {object} categoryResponse
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      409 {string} string "Conflict - duplicate name or slug"
// @Router       /api/categories [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Create(r.Context(), catUC.CreateInput{
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
	respond.JSON(w, http.StatusCreated, categoryResponse{Category: toDTO(c)})
}
