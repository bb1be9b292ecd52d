package article

import (
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type UpdateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  指定したフィールドだけを更新します。タイトル変更時は slug を再生成します
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id      path int           true "記事ID"
// @Param        article body updateRequest true "更新内容"
// @Success      200 {object} articleResponse
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, artUC.ErrInvalidArticleID)
		return
	}

	var req updateRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	in := artUC.UpdateInput{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		IsBreaking: req.IsBreaking,
		IsFeatured: req.IsFeatured,
	}
	if req.Status != nil {
		st := entity.ArticleStatus(*req.Status)
		in.Status = &st
	}

	a, err := h.Svc.Update(r.Context(), in)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, articleResponse{Article: toDTO(a)})
}
