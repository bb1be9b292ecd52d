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

type RegisterHandler struct {
	Svc    authUC.Service
	Logger *slog.Logger
}

// ServeHTTP ユーザー登録
// @Summary      ユーザー登録
// @Description  メールアドレスとパスワードでアカウントを作成します。ALLOWED_USERS が設定されている場合はリストにあるメールのみ登録できます。
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "登録情報"
// @Success      201 {object} registerResponse
// @Failure      400 {string} string "Bad request - missing email or password"
// @Failure      403 {string} string "Forbidden - email is not on the allow-list"
// @Failure      409 {string} string "Conflict - email already exists"
// @Failure      429 {string} string "Too many requests - rate limit exceeded" headers(Retry-After=integer)
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/auth/register [post]
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := logging.WithRequestID(r.Context(), loggerOrDefault(h.Logger))

	var req registerRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		RecordAuthRequest("register", "failure")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	u, err := h.Svc.Register(r.Context(), authUC.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	RecordAuthDuration("register", time.Since(start).Seconds())
	if err != nil {
		code := http.StatusInternalServerError
		result := "failure"
		switch {
		case errors.Is(err, authUC.ErrForbidden):
			code, result = http.StatusForbidden, "forbidden"
		case errors.Is(err, authUC.ErrEmailTaken):
			code = http.StatusConflict
		}
		RecordAuthRequest("register", result)
		logger.Warn("registration failed", slog.String("reason", result), slog.Int("status", code))
		respond.SafeError(w, code, err)
		return
	}

	RecordAuthRequest("register", "success")
	logger.Info("user registered", slog.Int64("user_id", u.ID))
	respond.JSON(w, http.StatusCreated, registerResponse{
		Message: "user registered",
		User:    UserDTO{ID: u.ID, Email: u.Email},
	})
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
