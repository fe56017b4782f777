// Package apperr defines the error categories handlers translate into HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Kind is the category of an application error.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthorization
	KindForbidden
	KindNotFound
	KindConflict
	KindDatabase
	KindRateLimited
)

// Code is the machine-readable name sent to clients.
func (k Kind) Code() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindAuthorization:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindRateLimited:
		return "RATE_LIMITED"
	default:
		return "DATABASE_ERROR"
	}
}

// Status maps the kind to an HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is an error with a category, a human-readable message and optional detail.
type Error struct {
	Kind    Kind
	Message string
	Detail  interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string, detail interface{}) *Error {
	return &Error{Kind: KindValidation, Message: message, Detail: detail}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func RateLimited(message string) *Error {
	return &Error{Kind: KindRateLimited, Message: message}
}

// Database wraps a data-layer failure. The driver message is forwarded as detail.
func Database(message string, err error) *Error {
	e := &Error{Kind: KindDatabase, Message: message, Err: err}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// FromDB classifies an error returned by GORM. Translated constraint errors
// become client errors; everything else is a database error.
func FromDB(message string, err error) *Error {
	var appErr *Error
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Message: message, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: KindConflict, Message: message, Detail: "duplicate value", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: KindValidation, Message: message, Detail: "referenced record does not exist", Err: err}
	default:
		return Database(message, err)
	}
}

// As extracts an *Error from err, wrapping unknown errors as database errors.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Database("internal error", err)
}
