package ad

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	adUC "newsdesk/internal/usecase/ad"
)

type UpdateHandler struct{ Svc adUC.Service }

// ServeHTTP 広告更新
// @Summary      広告更新
// @Tags         ads
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int           true "広告ID"
// @Param        ad body updateRequest true "更新内容"
// @Success      200 {object} adResponse
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - ad not found"
// @Router       /api/ads/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, adUC.ErrInvalidAdID)
		return
	}

	var req updateRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	in := adUC.UpdateInput{
		ID:        id,
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		IsActive:  req.IsActive,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.Position != nil {
		pos := entity.AdPosition(*req.Position)
		in.Position = &pos
	}

	a, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, adResponse{Ad: toDTO(a)})
}
