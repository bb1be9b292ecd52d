package category

import (
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type ListHandler struct{ Svc catUC.Service }

// ServeHTTP カテゴリ一覧
// @Summary      カテゴリ一覧
// @Description  表示順、名前の順でカテゴリを返します
// @Tags         categories
// @Produce      json
// @Param        active query bool false "有効なカテゴリのみ"
// @Success      200 {object} listResponse
// @Failure      400 {string} string "クエリが不正"
// @Router       /api/categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	active, err := request.BoolQuery(r, "active")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	list, err := h.Svc.List(r.Context(), active)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, listResponse{Categories: out})
}
