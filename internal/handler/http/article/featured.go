package article

import (
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type FeaturedHandler struct{ Svc artUC.Service }

// ServeHTTP 注目記事
// @Summary      注目記事
// @Tags         articles
// @Produce      json
// @Param        limit query int false "件数（既定 6）"
// @Success      200 {object} dataResponse
// @Failure      400 {string} string "クエリが不正"
// @Router       /api/articles/featured [get]
func (h FeaturedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := request.LimitQuery(r, artUC.FeaturedLimit, artUC.MaxListLimit)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	list, err := h.Svc.Featured(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: toDTOs(list)})
}
