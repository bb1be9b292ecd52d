package auction

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	aucUC "newsdesk/internal/usecase/auction"
)

type GetHandler struct{ Svc aucUC.Service }

// ServeHTTP オークション詳細
// @Summary      オークション詳細
// @Description  直近 10 件の入札（新しい順）を含みます
// @Tags         auctions
// @Produce      json
// @Param        id path int true "オークションID"
// @Success      200 {object} dataResponse{data=DTO}
// @Failure      404 {string} string "Not found - auction not found"
// @Router       /api/auctions/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, aucUC.ErrInvalidAuctionID)
		return
	}
	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	d := toDTO(a)
	if d.Bids == nil {
		d.Bids = []BidDTO{}
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: d})
}
