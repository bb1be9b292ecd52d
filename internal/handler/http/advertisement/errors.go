package advertisement

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	advUC "newsdesk/internal/usecase/advertisement"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed), errors.Is(err, advUC.ErrInvalidAdvertisementID):
		return http.StatusBadRequest
	case errors.Is(err, advUC.ErrAdvertisementNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
