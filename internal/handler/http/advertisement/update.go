package advertisement

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	advUC "newsdesk/internal/usecase/advertisement"
)

type UpdateHandler struct{ Svc advUC.Service }

// ServeHTTP 求人・広告更新
// @Summary      求人・広告更新
// @Tags         advertisements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id            path int           true "ID"
// @Param        advertisement body updateRequest true "更新内容"
// @Success      200 {object} dataResponse
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - advertisement not found"
// @Router       /api/advertisements/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, advUC.ErrInvalidAdvertisementID)
		return
	}
	var req updateRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	a, err := h.Svc.Update(r.Context(), advUC.UpdateInput{
		ID:              id,
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
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: toDTO(a)})
}
