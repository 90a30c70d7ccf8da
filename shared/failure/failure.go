package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying store or driver error, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Unavailable returns a new Failure for a store that cannot be reached or a transaction
// that could not be committed. The whole operation may be retried.
func Unavailable(err error) error {
	msg := "store unavailable, please retry"
	if err != nil {
		msg = msg + ": " + err.Error()
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
		cause:   err,
	}
}

// Wrap returns a new Failure with the given code and message that keeps err as its cause.
func Wrap(code int, message string, err error) error {
	return &Failure{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsRetryable reports whether the caller may safely retry the whole operation.
func IsRetryable(err error) bool {
	return GetCode(err) == http.StatusServiceUnavailable
}

func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return GetCode(err) == http.StatusConflict
}

func IsBadRequest(err error) bool {
	return GetCode(err) == http.StatusBadRequest
}
