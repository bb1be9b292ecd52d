package article

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	authsvc "newsdesk/internal/service/auth"
	artUC "newsdesk/internal/usecase/article"
)

type CreateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  記事を作成します。本文 HTML はサニタイズされ、slug はタイトルから生成されます
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body createRequest true "記事情報"
// @Success      201 {object} createResponse
// @Failure      400 {string} string "Bad request - invalid input or unknown category"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles [post]
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

	a, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		AuthorID:   req.AuthorID,
		IsBreaking: req.IsBreaking,
		IsFeatured: req.IsFeatured,
		Status:     entity.ArticleStatus(req.Status),
	}, p.ID)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, createResponse{ID: a.ID, Slug: a.Slug})
}
