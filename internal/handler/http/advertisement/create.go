package advertisement

import (
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	advUC "newsdesk/internal/usecase/advertisement"
)

type CreateHandler struct{ Svc advUC.Service }

// ServeHTTP 求人・広告作成
// @Summary      求人・広告作成
// @Tags         advertisements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        advertisement body createRequest true "掲載内容"
// @Success      201 {object} dataResponse
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /api/advertisements [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	a, err := h.Svc.Create(r.Context(), advUC.Input{
		Title:           req.Title,
		FullDescription: req.FullDescription,
		Company:         req.Company,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		Location:        req.Location,
		Deadline:        req.Deadline,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		ContactWebsite:  req.ContactWebsite,
		ContactAddress:  req.ContactAddress,
		Requirements:    req.Requirements,
		Benefits:        req.Benefits,
		IsActive:        req.IsActive,
		IsFeatured:      req.IsFeatured,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, dataResponse{Success: true, Data: toDTO(a)})
}
