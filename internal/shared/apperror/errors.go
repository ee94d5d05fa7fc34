package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of the outcomes the write and query
// layers are allowed to report. Raw storage errors never cross the
// repository boundary; they are folded into one of these kinds first.
type Kind string

const (
	KindValidation          Kind = "VALIDATION_ERROR"
	KindUniqueViolation     Kind = "UNIQUE_CONSTRAINT_VIOLATION"
	KindNotFound            Kind = "NOT_FOUND"
	KindReference           Kind = "REFERENCE_ERROR"
	KindDependencyConflict  Kind = "DEPENDENCY_CONFLICT"
	KindTransactionConflict Kind = "TRANSACTION_CONFLICT"
	KindUnauthorized        Kind = "UNAUTHORIZED"
	KindInternal            Kind = "INTERNAL_ERROR"
)

// Error is the typed error carried from repositories and services up to
// the HTTP layer.
type Error struct {
	Kind    Kind
	Code    string // domain specific code, e.g. BOOK_NOT_FOUND
	Message string
	Details map[string]interface{}
	Err     error // underlying cause, never rendered to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code so that sentinel errors keep matching after
// WithDetails / Wrap produced a copy.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Kind == t.Kind
}

// HTTPStatus maps the error kind to a response status code.
func (e *Error) HTTPStatus() int {
	return StatusFor(e.Kind)
}

// WithDetails returns a copy of e carrying the given details.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Wrap returns a copy of e with cause attached.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.Err = cause
	return &cp
}

// =====================================================
// CONSTRUCTORS
// =====================================================

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func UniqueViolation(code, message string) *Error {
	return New(KindUniqueViolation, code, message)
}

func Reference(code, message string) *Error {
	return New(KindReference, code, message)
}

func DependencyConflict(code, message string) *Error {
	return New(KindDependencyConflict, code, message)
}

// ErrTransactionConflict is reported once serialization failures or
// deadlocks exhausted the configured retries.
var ErrTransactionConflict = New(KindTransactionConflict, "TRANSACTION_CONFLICT",
	"The operation conflicted with a concurrent change, please retry")

// ErrOperationCanceled is reported when the caller's context ended before a
// write committed. Nothing was applied.
var ErrOperationCanceled = New(KindInternal, "OPERATION_CANCELED",
	"The operation was canceled before it completed")

// Internal wraps an unexpected error. The cause is kept for logging only.
func Internal(cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
		Err:     cause,
	}
}

// =====================================================
// HELPERS
// =====================================================

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the kind of err; untyped errors are internal.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// From converts any error into an *Error, wrapping untyped errors as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if appErr, ok := As(err); ok {
		return appErr
	}
	return Internal(err)
}

var statusByKind = map[Kind]int{
	KindValidation:          http.StatusBadRequest,
	KindNotFound:            http.StatusNotFound,
	KindUniqueViolation:     http.StatusConflict,
	KindDependencyConflict:  http.StatusConflict,
	KindTransactionConflict: http.StatusConflict,
	KindReference:           http.StatusUnprocessableEntity,
	KindUnauthorized:        http.StatusUnauthorized,
	KindInternal:            http.StatusInternalServerError,
}

func StatusFor(kind Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}
