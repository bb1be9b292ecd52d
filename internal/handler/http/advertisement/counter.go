package advertisement

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	advUC "newsdesk/internal/usecase/advertisement"
)

type ViewHandler struct{ Svc advUC.Service }

// ServeHTTP 閲覧数加算
// @Summary      閲覧数加算
// @Tags         advertisements
// @Produce      json
// @Param        id path int true "ID"
// @Success      200 {object} dataResponse{data=viewsData}
// @Failure      404 {string} string "Not found - advertisement not found"
// @Router       /api/advertisements/{id}/view [post]
func (h ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, advUC.ErrInvalidAdvertisementID)
		return
	}
	n, err := h.Svc.View(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: viewsData{Views: n}})
}

type ApplyHandler struct{ Svc advUC.Service }

// ServeHTTP 応募数加算
// @Summary      応募数加算
// @Tags         advertisements
// @Produce      json
// @Param        id path int true "ID"
// @Success      200 {object} dataResponse{data=applicantsData}
// @Failure      404 {string} string "Not found - advertisement not found"
// @Router       /api/advertisements/{id}/apply [post]
func (h ApplyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, advUC.ErrInvalidAdvertisementID)
		return
	}
	n, err := h.Svc.Apply(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, dataResponse{Success: true, Data: applicantsData{Applicants: n}})
}
