package article

import (
	"errors"
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	artUC "newsdesk/internal/usecase/article"
)

type ListHandler struct {
	Svc           artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得
// @Description  公開済み記事をページング付きで返します。category はカテゴリの slug です
// @Tags         articles
// @Produce      json
// @Param        category   query string false "カテゴリ slug"
// @Param        status     query string false "draft | published（既定 published）"
// @Param        isBreaking query bool   false "速報のみ"
// @Param        isFeatured query bool   false "注目記事のみ"
// @Param        limit      query int    false "件数（既定 20、最大 100）"
// @Param        offset     query int    false "オフセット"
// @Success      200 {object} listResponse
// @Failure      400 {string} string "クエリが不正"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	q := r.URL.Query()
	filter := entity.ArticleFilter{
		CategorySlug: q.Get("category"),
		Status:       entity.ArticleStatus(q.Get("status")),
		Limit:        params.Limit,
		Offset:       params.Offset,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid query parameter: status must be draft or published"))
		return
	}
	if filter.IsBreaking, err = request.BoolQuery(r, "isBreaking"); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if filter.IsFeatured, err = request.BoolQuery(r, "isFeatured"); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.Svc.List(r.Context(), filter)
	if err != nil {
		if h.Logger != nil {
			logging.WithRequestID(r.Context(), h.Logger).Error("list articles failed", slog.Any("error", err))
		}
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, listResponse{
		Articles: toDTOs(res.Articles),
		Total:    res.Total,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}
