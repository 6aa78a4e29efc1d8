// Package apperr defines the application error taxonomy. Handlers and
// services return *Error values; the HTTP boundary maps them onto the
// response envelope and a status code.
package apperr

import "fmt"

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	// Detail carries per-field validation info when present.
	Detail any
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string, detail any) *Error {
	return &Error{Kind: KindValidation, Message: message, Detail: detail}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}
