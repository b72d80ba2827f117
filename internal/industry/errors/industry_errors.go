package industryerrors

import (
	"fmt"
	"net/http"

	"biztime/internal/shared/apperror"
)

func NotFound(code string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Can't find industry with code '%s'", code),
		http.StatusNotFound,
	)
}

var ErrDuplicateCode = apperror.New(
	apperror.CodeConstraintViolation,
	"Industry with this code already exists",
	http.StatusInternalServerError,
)

var ErrDuplicateAssociation = apperror.New(
	apperror.CodeConstraintViolation,
	"Company is already associated with this industry",
	http.StatusInternalServerError,
)
