package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an error for every transport layer.
type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeTransport    Code = "TRANSPORT_ERROR"
	CodeConfig       Code = "CONFIG_ERROR"
	CodeInternal     Code = "INTERNAL"
)

// Error is a classified application error with a human readable message.
// Details carries per-field information for validation failures.
type Error struct {
	Code    Code
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
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

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Validation builds a validation error. details maps field name to reason.
func Validation(message string, details map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, message)
}

// Is reports whether err (or anything it wraps) is an *Error with code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf extracts the code from err, CodeInternal for unclassified errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
