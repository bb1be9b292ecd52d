package article

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  記事を 1 件返します。閲覧数を 1 増やし、承認済みコメントを含めます
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} articleResponse
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, artUC.ErrInvalidArticleID)
		return
	}

	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, articleResponse{Article: toDTO(a)})
}
