package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error carrying the HTTP status it maps to.
// Store-layer errors never escape the services raw; they are wrapped into
// one of the predefined kinds below.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is makes every instance derived through WithMessage/Wrapf match its kind,
// so errors.Is(err, models.ErrNotFound) works on enriched copies.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func NewError(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

var (
	ErrUnauthorized = NewError("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrValidation   = NewError("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrNotFound     = NewError("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrInvalidState = NewError("INVALID_STATE", http.StatusConflict, "operation not allowed in current status")
	ErrConflict     = NewError("CONFLICT", http.StatusConflict, "conflict")
	ErrInternal     = NewError("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// WithMessage returns a copy of kind carrying a caller-facing message.
func (e *Error) WithMessage(message string) *Error {
	clone := *e
	clone.Message = message
	return &clone
}

// Wrapf returns a copy of kind wrapping cause; cause is for logs only and
// is never rendered to the caller.
func (e *Error) Wrapf(cause error, format string, args ...interface{}) *Error {
	clone := *e
	clone.Message = fmt.Sprintf(format, args...)
	clone.Err = cause
	return &clone
}

// FromError normalises any error into an *Error, defaulting to ErrInternal.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal.Wrapf(err, "internal server error")
}
