package ad

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	adUC "newsdesk/internal/usecase/ad"
)

type GetHandler struct{ Svc adUC.Service }

// ServeHTTP 広告詳細
// @Summary      広告詳細
// @Tags         ads
// @Produce      json
// @Param        id path int true "広告ID"
// @Success      200 {object} adResponse
// @Failure      400 {string} string "Bad request - invalid ad ID"
// @Failure      404 {string} string "Not found - ad not found"
// @Router       /api/ads/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, adUC.ErrInvalidAdID)
		return
	}
	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, adResponse{Ad: toDTO(a)})
}
