package ad

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	adUC "newsdesk/internal/usecase/ad"
)

type ListHandler struct{ Svc adUC.Service }

// ServeHTTP 広告一覧
// @Summary      広告一覧
// @Description  新しい順に広告を返します。current=true で掲載期間内の有効な広告に絞り込みます
// @Tags         ads
// @Produce      json
// @Param        position query string false "homepage_top | sidebar | inline | header | footer"
// @Param        isActive query bool   false "有効フラグ"
// @Param        current  query bool   false "現在掲載中のみ"
// @Success      200 {object} listResponse
// @Failure      400 {string} string "クエリが不正"
// @Router       /api/ads [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in := adUC.ListInput{Position: entity.AdPosition(r.URL.Query().Get("position"))}
	if in.Position != "" && !in.Position.Valid() {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid query parameter: position"))
		return
	}

	var err error
	if in.IsActive, err = request.BoolQuery(r, "isActive"); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	current, err := request.BoolQuery(r, "current")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	in.Current = current != nil && *current

	list, err := h.Svc.List(r.Context(), in)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, listResponse{Ads: out})
}
