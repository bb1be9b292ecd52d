package comment

import (
	"net/http"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	comUC "newsdesk/internal/usecase/comment"
)

type ListHandler struct{ Svc comUC.Service }

// ServeHTTP コメント一覧（モデレーション）
// @Summary      コメント一覧（モデレーション）
// @Tags         comments
// @Security     BearerAuth
// @Produce      json
// @Param        approved query bool false "承認状態で絞り込み"
// @Success      200 {object} listResponse
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /api/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	approved, err := request.BoolQuery(r, "approved")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	list, err := h.Svc.List(r.Context(), approved)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, listResponse{Comments: out})
}
