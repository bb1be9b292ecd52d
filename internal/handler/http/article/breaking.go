package article

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type BreakingHandler struct{ Svc artUC.Service }

// ServeHTTP 速報一覧
// @Summary      速報一覧
// @Description  公開済みの速報記事を最大 5 件返します
// @Tags         articles
// @Produce      json
// @Success      200 {object} articlesResponse
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles/breaking/all [get]
func (h BreakingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.Breaking(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, articlesResponse{Articles: toDTOs(list)})
}
