package auction

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	aucUC "newsdesk/internal/usecase/auction"
)

type ListHandler struct{ Svc aucUC.Service }

// ServeHTTP オークション一覧
// @Summary      オークション一覧
// @Description  終了時刻の早い順
// @Tags         auctions
// @Produce      json
// @Param        status   query string false "active | ended"
// @Param        category query string false "カテゴリ"
// @Param        limit    query int    false "件数（既定 20）"
// @Success      200 {object} dataResponse{data=[]DTO}
// @Failure      400 {string} string "クエリが不正"
// @Router       /api/auctions [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := request.LimitQuery(r, aucUC.DefaultListLimit, aucUC.MaxListLimit)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	q := r.URL.Query()
	list, err := h.Svc.List(r.Context(), entity.AuctionFilter{
		Status:   entity.AuctionStatus(q.Get("status")),
		Category: q.Get("category"),
		Limit:    limit,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: out})
}
