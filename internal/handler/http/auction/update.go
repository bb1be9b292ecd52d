package auction

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	aucUC "newsdesk/internal/usecase/auction"
)

type UpdateHandler struct{ Svc aucUC.Service }

// ServeHTTP オークション更新
// @Summary      オークション更新
// @Description  currentBid と totalBids は直接変更できません
// @Tags         auctions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int           true "オークションID"
// @Param        auction body updateRequest true "更新内容"
// @Success      200 {object} dataResponse{data=DTO}
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - auction not found"
// @Router       /api/auctions/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, aucUC.ErrInvalidAuctionID)
		return
	}
	var req updateRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	in := aucUC.UpdateInput{
		ID:              id,
		Title:           req.Title,
		FullDescription: req.FullDescription,
		MinIncrement:    req.MinIncrement,
		EndTime:         req.EndTime,
		Images:          req.Images,
		Category:        req.Category,
		Condition:       req.Condition,
		Location:        req.Location,
		Shipping:        req.Shipping,
		Returns:         req.Returns,
		IsFeatured:      req.IsFeatured,
	}
	if req.Status != nil {
		st := entity.AuctionStatus(*req.Status)
		in.Status = &st
	}
	a, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: toDTO(a)})
}
