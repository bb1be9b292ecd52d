package category

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	catUC "newsdesk/internal/usecase/category"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed), errors.Is(err, catUC.ErrInvalidCategoryID):
		return http.StatusBadRequest
	case errors.Is(err, catUC.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, catUC.ErrDuplicateCategory), errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
