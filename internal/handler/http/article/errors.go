package article

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	artUC "newsdesk/internal/usecase/article"
)

// statusFor maps usecase errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed),
		errors.Is(err, artUC.ErrInvalidArticleID),
		errors.Is(err, artUC.ErrEmptyQuery),
		errors.Is(err, artUC.ErrCategoryNotFound):
		return http.StatusBadRequest
	case errors.Is(err, artUC.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
