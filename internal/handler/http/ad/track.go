package ad

import (
	"context"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	adUC "newsdesk/internal/usecase/ad"
)

// TrackHandler serves the click and impression counters. Both are atomic increments.
type TrackHandler struct {
	Svc   adUC.Service
	Event string // "click" or "impression"
}

// ServeHTTP 広告クリック・インプレッション計測
// @Summary      広告クリック・インプレッション計測
// @Tags         ads
// @Produce      json
// @Param        id path int true "広告ID"
// @Success      200 {object} successResponse
// @Failure      400 {string} string "Bad request - invalid ad ID"
// @Failure      404 {string} string "Not found - ad not found"
// @Router       /api/ads/{id}/click [post]
// @Router       /api/ads/{id}/impression [post]
func (h TrackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, adUC.ErrInvalidAdID)
		return
	}

	var record func(context.Context, int64) error
	if h.Event == "impression" {
		record = h.Svc.Impression
	} else {
		record = h.Svc.Click
	}
	if err := record(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, successResponse{Success: true})
}
