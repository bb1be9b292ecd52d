package auction

import (
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	authsvc "newsdesk/internal/service/auth"
	aucUC "newsdesk/internal/usecase/auction"
)

type CreateHandler struct{ Svc aucUC.Service }

// ServeHTTP オークション作成
// @Summary      オークション作成
// @Tags         auctions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        auction body createRequest true "出品内容"
// @Success      201 {object} dataResponse{data=DTO}
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /api/auctions [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := authsvc.PrincipalFrom(r.Context())
	if p == nil {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("missing token"))
		return
	}
	var req createRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	a, err := h.Svc.Create(r.Context(), aucUC.CreateInput{
		Title:           req.Title,
		FullDescription: req.FullDescription,
		StartingBid:     req.StartingBid,
		MinIncrement:    req.MinIncrement,
		EndTime:         req.EndTime,
		Images:          req.Images,
		Category:        req.Category,
		Condition:       req.Condition,
		Location:        req.Location,
		Shipping:        req.Shipping,
		Returns:         req.Returns,
		IsFeatured:      req.IsFeatured,
	}, p.ID)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, dataResponse{Success: true, Data: toDTO(a)})
}
