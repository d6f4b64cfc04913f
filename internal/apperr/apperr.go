package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "auth"
	KindStore      Kind = "store"
)

// Error is the only error type repository services are allowed to surface.
// Err keeps the underlying cause for logs; it is never serialized.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Authf(format string, args ...any) *Error {
	return &Error{Kind: KindAuth, Message: fmt.Sprintf(format, args...)}
}

func Storef(format string, args ...any) *Error {
	return &Error{Kind: KindStore, Message: fmt.Sprintf(format, args...)}
}

func is(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

func IsValidation(err error) bool { return is(err, KindValidation) }
func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsAuth(err error) bool       { return is(err, KindAuth) }
func IsStore(err error) bool      { return is(err, KindStore) }

// IsDuplicate reports whether err looks like a unique-constraint violation.
// Postgres says "duplicate key value violates unique constraint", sqlite says
// "UNIQUE constraint failed".
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// FromDB translates a raw gorm/driver error into the taxonomy. entity names
// the record for the message, e.g. "child" -> "child not found".
func FromDB(err error, entity string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundf("%s not found", entity)
	case IsDuplicate(err):
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("%s already exists", entity), Err: err}
	default:
		return &Error{Kind: KindStore, Message: fmt.Sprintf("failed to access %s store", entity), Err: err}
	}
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Write serializes err as the JSON error body. Untyped errors collapse to a
// generic 500 so driver internals never leak to clients.
func Write(c *gin.Context, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(statusFor(ae.Kind), gin.H{"error": ae.Message})
}
