package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the wire form of a failed request. It serializes to the
// body's "error" object: {"message": ..., "status": ...}.
type HTTPError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Code    string `json:"-"`
}

// ToHTTP maps any error to its HTTP representation. Errors that are not
// AppErrors surface as 500 with the underlying error message.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Message: appErr.Message,
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
		}
	}

	return HTTPError{
		Message: err.Error(),
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
	}
}
