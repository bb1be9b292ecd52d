// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"newsdesk/internal/domain/entity"
)

// development adds a "detail" field to 500 responses.
var development atomic.Bool

// SetDevelopment toggles detailed 500 responses. Enabled when APP_ENV=development.
func SetDevelopment(on bool) { development.Store(on) }

// safePhrases are substrings that mark an error message as fit for clients.
var safePhrases = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"too low",
	"not active",
	"not allowed",
	"forbidden",
	"missing token",
	"expired",
	"too many requests",
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, p := range safePhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// SafeError sanitizes error messages before returning them to users.
// Internal errors (e.g., database errors) are returned as "internal server error",
// with details logged for debugging. Safe errors (validation errors) are returned as-is.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	// field 単位のバリデーションエラーは常に 400 で返す
	var fields entity.ValidationErrors
	if errors.As(err, &fields) {
		JSON(w, http.StatusBadRequest, map[string]any{
			"error":  fields.Error(),
			"fields": fields.Fields(),
		})
		return
	}

	msg := err.Error()
	// 500エラーは常に内部エラーとして扱う
	if code < 500 && isSafe(msg) {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	// 機密情報をマスクしてログ出力
	sanitized := SanitizeError(err)
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", sanitized))

	body := map[string]string{"error": "internal server error"}
	if development.Load() {
		body["detail"] = sanitized
	}
	JSON(w, code, body)
}
