package comment

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	comUC "newsdesk/internal/usecase/comment"
)

type CreateHandler struct{ Svc comUC.Service }

// ServeHTTP コメント投稿
// @Summary      コメント投稿
// @Description  承認されるまで記事には表示されません。HTML タグは除去されます
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id      path int           true "記事ID"
// @Param        comment body createRequest true "コメント"
// @Success      201 {object} commentResponse
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - article not found"
// @Router       /api/articles/{id}/comments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	var req createRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := h.Svc.Create(r.Context(), comUC.CreateInput{
		ArticleID:   articleID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, commentResponse{Comment: toDTO(c)})
}
