package invoiceerrors

import (
	"fmt"
	"net/http"

	"biztime/internal/shared/apperror"
)

func NotFound(id int) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Can't find invoice with id '%d'", id),
		http.StatusNotFound,
	)
}

var ErrInvalidID = apperror.New(
	apperror.CodeInvalidInput,
	"Invoice id must be an integer",
	http.StatusBadRequest,
)

var ErrUnknownCompany = apperror.New(
	apperror.CodeConstraintViolation,
	"Invoice references a company that does not exist",
	http.StatusInternalServerError,
)
