package category

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type BySlugHandler struct{ Svc catUC.Service }

// ServeHTTP カテゴリ詳細（slug）
// @Summary      カテゴリ詳細
// @Description  カテゴリと、その最新の公開記事 20 件を返します
// @Tags         categories
// @Produce      json
// @Param        key path string true "カテゴリ slug"
// @Success      200 {object} bySlugResponse
// @Failure      404 {string} string "Not found - category not found"
// @Router       /api/categories/{key} [get]
func (h BySlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, articles, err := h.Svc.BySlug(r.Context(), r.PathValue("key"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, bySlugResponse{Category: toDTO(c), Articles: toSummaries(articles)})
}
