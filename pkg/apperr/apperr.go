// Package apperr defines the error taxonomy services return to the HTTP
// layer: a stable machine-readable kind plus a human message. Internal
// causes travel on the wrapped error and are never serialized.
package apperr

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindValidation       Kind = "validation"
	KindInvalidState     Kind = "invalid_state"
	KindEmptyCart        Kind = "empty_cart"
	KindMissingSelection Kind = "missing_selection"
	KindUnauthorized     Kind = "unauthorized"
	KindUnavailable      Kind = "unavailable" // retryable
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from anywhere in the chain, or "" for untyped
// errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// FromDB translates storage errors into the taxonomy: record-not-found
// becomes NotFound with the given message, deadline/cancel becomes the
// retryable Unavailable. Typed errors and nil pass through.
func FromDB(err error, notFoundMsg string) error {
	var typed *Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &typed):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return New(KindNotFound, notFoundMsg)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return Wrap(KindUnavailable, "storage unavailable", err)
	default:
		return err
	}
}
