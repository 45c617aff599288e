package services

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrorStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrorUnknown          ErrorCode = "UNKNOWN"
)

// Error is the failure shape the service surfaces. Message is safe to return
// to callers; Err keeps the underlying cause for logs only.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("services: %s (%s)", e.Code, e.Message)
	}
	return fmt.Sprintf("services: %s (%s): %v", e.Code, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HTTPStatus maps the error code to the response status
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case ErrorInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// AsServiceError unwraps err into *Error, falling back to UNKNOWN so the
// HTTP layer always has a code and a safe message to work with.
func AsServiceError(err error) *Error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return newError(ErrorUnknown, "unexpected error", err)
}
