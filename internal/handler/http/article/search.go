package article

import (
	"net/http"
	"strings"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type SearchHandler struct{ Svc artUC.Service }

// ServeHTTP 記事検索
// @Summary      記事検索
// @Description  タイトル・本文・抜粋を大文字小文字を区別せずに部分一致検索します（公開済みのみ）
// @Tags         articles
// @Produce      json
// @Param        q     query string true  "検索語"
// @Param        limit query int    false "件数（既定 20）"
// @Success      200 {object} searchResponse
// @Failure      400 {string} string "q が空"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	limit, err := request.LimitQuery(r, artUC.SearchLimit, artUC.MaxListLimit)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	list, err := h.Svc.Search(r.Context(), q, limit)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, searchResponse{Success: true, Data: toDTOs(list), Query: q})
}
