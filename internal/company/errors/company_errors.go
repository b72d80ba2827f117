package companyerrors

import (
	"fmt"
	"net/http"

	"biztime/internal/shared/apperror"
)

// NotFound carries the lookup code in the message, matching the wire
// contract for company 404s.
func NotFound(code string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Can't find company with code '%s'", code),
		http.StatusNotFound,
	)
}

var ErrDuplicateCode = apperror.New(
	apperror.CodeConstraintViolation,
	"Company with this code already exists",
	http.StatusInternalServerError,
)
