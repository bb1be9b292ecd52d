package ad

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	authsvc "newsdesk/internal/service/auth"
	adUC "newsdesk/internal/usecase/ad"
)

type CreateHandler struct{ Svc adUC.Service }

// ServeHTTP 広告作成
// @Summary      広告作成
// @Tags         ads
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        ad body createRequest true "広告情報"
// @Success      201 {object} adResponse
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /api/ads [post]
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

	a, err := h.Svc.Create(r.Context(), adUC.CreateInput{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		Position:  entity.AdPosition(req.Position),
		IsActive:  req.IsActive,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}, p.ID)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, adResponse{Ad: toDTO(a)})
}
