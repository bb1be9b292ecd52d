package newsletter

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	nlUC "newsdesk/internal/usecase/newsletter"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, nlUC.ErrSubscriberNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
