package comment

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	comUC "newsdesk/internal/usecase/comment"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed), errors.Is(err, comUC.ErrInvalidCommentID):
		return http.StatusBadRequest
	case errors.Is(err, comUC.ErrCommentNotFound), errors.Is(err, comUC.ErrArticleNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
