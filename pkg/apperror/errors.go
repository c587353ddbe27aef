package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal server error")
)

// AppError carries the short label and the human message the API returns
// as {error, message}, plus the sentinel used for status mapping.
type AppError struct {
	Label   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(err error, label, message string) *AppError {
	return &AppError{Label: label, Message: message, Err: err}
}

func BadRequest(label, message string) *AppError {
	return New(ErrInvalidInput, label, message)
}

func Unauthorized(label, message string) *AppError {
	return New(ErrUnauthorized, label, message)
}

func Forbidden(label, message string) *AppError {
	return New(ErrForbidden, label, message)
}

func NotFound(label, message string) *AppError {
	return New(ErrNotFound, label, message)
}

func Conflict(label, message string) *AppError {
	return New(ErrConflict, label, message)
}

// MapErrorToStatus maps common errors to HTTP status codes
func MapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
