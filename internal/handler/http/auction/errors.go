package auction

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	aucUC "newsdesk/internal/usecase/auction"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed),
		errors.Is(err, aucUC.ErrInvalidAuctionID),
		errors.Is(err, aucUC.ErrAuctionNotActive),
		errors.Is(err, aucUC.ErrBidTooLow):
		return http.StatusBadRequest
	case errors.Is(err, aucUC.ErrAuctionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
