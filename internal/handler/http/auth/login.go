package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/request"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	authUC "newsdesk/internal/usecase/auth"
)

type LoginHandler struct {
	Svc    authUC.Service
	Logger *slog.Logger
}

// ServeHTTP ログイン
// @Summary      ログイン（JWT 発行）
// @Description  メールアドレスとパスワードで認証し、HS256 の JWT を発行します
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "ログイン情報"
// @Success      200 {object} loginResponse "JWT トークン"
// @Failure      400 {string} string "リクエストが不正"
// @Failure      401 {string} string "認証失敗"
// @Failure      403 {string} string "Forbidden - email is not on the allow-list"
// @Failure      429 {string} string "Too many requests - rate limit exceeded" headers(Retry-After=integer)
// @Failure      500 {string} string "トークン生成失敗"
// @Router       /api/auth/login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := logging.WithRequestID(r.Context(), loggerOrDefault(h.Logger))

	var req loginRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		RecordAuthRequest("login", "failure")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	RecordAuthDuration("login", time.Since(start).Seconds())
	if err != nil {
		code := http.StatusInternalServerError
		result := "failure"
		switch {
		case errors.Is(err, authUC.ErrForbidden):
			code, result = http.StatusForbidden, "forbidden"
		case errors.Is(err, authUC.ErrInvalidCredentials):
			code = http.StatusUnauthorized
		}
		RecordAuthRequest("login", result)
		logger.Warn("authentication failed",
			slog.String("reason", result),
			slog.Int("status", code),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		respond.SafeError(w, code, err)
		return
	}

	RecordAuthRequest("login", "success")
	logger.Info("authentication successful",
		slog.Int64("user_id", res.User.ID),
		slog.String("role", string(res.User.Role)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	respond.JSON(w, http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      toUserDTO(res.User),
	})
}
