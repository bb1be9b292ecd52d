package article

import (
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type LatestHandler struct{ Svc artUC.Service }

// ServeHTTP 最新記事
// @Summary      最新記事
// @Tags         articles
// @Produce      json
// @Param        limit query int false "件数（既定 10）"
// @Success      200 {object} dataResponse
// @Failure      400 {string} string "クエリが不正"
// @Router       /api/articles/latest [get]
func (h LatestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := request.LimitQuery(r, artUC.LatestLimit, artUC.MaxListLimit)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	list, err := h.Svc.Latest(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: toDTOs(list)})
}
