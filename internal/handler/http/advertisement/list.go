package advertisement

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	advUC "newsdesk/internal/usecase/advertisement"
)

type ListHandler struct {
	Svc           advUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 求人・広告一覧
// @Summary      求人・広告一覧
// @Description  注目→新しい順。active は既定で true、search はタイトル・会社名・本文の部分一致（大文字小文字を区別しない）
// @Tags         advertisements
// @Produce      json
// @Param        category query string false "カテゴリ"
// @Param        featured query bool   false "注目のみ"
// @Param        active   query bool   false "有効フラグ（既定 true）"
// @Param        search   query string false "検索語"
// @Param        limit    query int    false "件数（既定 20、最大 100）"
// @Param        offset   query int    false "オフセット"
// @Success      200 {object} listResponse
// @Failure      400 {string} string "クエリが不正"
// @Router       /api/advertisements [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	q := r.URL.Query()
	f := entity.AdvertisementFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	if f.Featured, err = request.BoolQuery(r, "featured"); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if f.Active, err = request.BoolQuery(r, "active"); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := h.Svc.List(r.Context(), f)
	if err != nil {
		if h.Logger != nil {
			logging.WithRequestID(r.Context(), h.Logger).Error("list advertisements failed", slog.Any("error", err))
		}
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, listResponse{
		Success:    true,
		Data:       toDTOs(page.Items),
		Pagination: pagination.NewMetadata(page.Total, params),
	})
}
