package auction

import (
	"errors"
	"log/slog"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	authsvc "newsdesk/internal/service/auth"
	aucUC "newsdesk/internal/usecase/auction"
)

type BidHandler struct {
	Svc    aucUC.Service
	Logger *slog.Logger
}

// ServeHTTP 入札
// @Summary      入札
// @Description  行ロックした状態で「現在価格 + 最小入札単位」以上かを検証します
// @Tags         auctions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path int        true "オークションID"
// @Param        bid body bidRequest true "入札額"
// @Success      200 {object} dataResponse{data=BidDTO}
// @Failure      400 {string} string "auction is not active / bid too low"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - auction not found"
// @Router       /api/auctions/{id}/bid [post]
func (h BidHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := authsvc.PrincipalFrom(r.Context())
	if p == nil {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("missing token"))
		return
	}
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, aucUC.ErrInvalidAuctionID)
		return
	}
	var req bidRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	bid, err := h.Svc.Bid(r.Context(), id, p.ID, req.Amount)
	if err != nil {
		if h.Logger != nil {
			logging.WithRequestID(r.Context(), h.Logger).Info("bid rejected",
				slog.Int64("auction_id", id),
				slog.Int64("user_id", p.ID),
				slog.Float64("amount", req.Amount),
				slog.Any("error", err))
		}
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: toBidDTO(bid)})
}
