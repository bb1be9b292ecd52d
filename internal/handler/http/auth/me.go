package auth

import (
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	authsvc "newsdesk/internal/service/auth"
	authUC "newsdesk/internal/usecase/auth"
)

type MeHandler struct{ Svc authUC.Service }

// ServeHTTP ログインユーザー取得
// @Summary      ログインユーザー取得
// @Description  トークンの持ち主のアカウント情報を返します
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} meResponse
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - account was deleted"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/auth/me [get]
func (h MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := authsvc.PrincipalFrom(r.Context())
	if p == nil {
		respond.SafeError(w, http.StatusUnauthorized, errNoPrincipal)
		return
	}

	u, err := h.Svc.Me(r.Context(), p.ID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, authUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, meResponse{User: toUserDTO(u)})
}
