package ad

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	adUC "newsdesk/internal/usecase/ad"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed), errors.Is(err, adUC.ErrInvalidAdID):
		return http.StatusBadRequest
	case errors.Is(err, adUC.ErrAdNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
