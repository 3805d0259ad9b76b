package errx

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a failure. Every error a loader returns carries exactly
// one Code, so callers branch on the class instead of matching strings.
type Code string

// Error is the error type shared by all loading stages. It carries the
// failure class, a message, an optional file location, and the wrapped
// cause when one exists. Values are immutable; With* and At derive copies.
type Error struct {
	code  Code
	msg   string
	path  string
	line  int
	cause error
}

// New returns an *Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	parts := make([]string, 0, 4)
	parts = append(parts, string(e.code))
	if e.path != "" {
		if e.line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.path, e.line))
		} else {
			parts = append(parts, e.path)
		}
	}
	if e.msg != "" {
		parts = append(parts, e.msg)
	}
	if e.cause != nil {
		parts = append(parts, e.cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Code reports the failure class.
func (e *Error) Code() Code { return e.code }

// CodeText reports the failure class as a plain string, for callers that
// must not depend on the Code type.
func (e *Error) CodeText() string { return string(e.code) }

// Path reports the file the error is attached to, empty when unattached.
func (e *Error) Path() string { return e.path }

// Line reports the 1-based line or row the error is attached to, zero
// when unattached.
func (e *Error) Line() int { return e.line }

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// Is matches by code, so errors.Is(err, ErrParse) holds for any
// parse-class error regardless of message or location.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// WithCause derives a copy wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	next := *e
	next.cause = cause
	return &next
}

// WithPath derives a copy attached to path.
func (e *Error) WithPath(path string) *Error {
	next := *e
	next.path = path
	return &next
}

// At derives a copy attached to path and a 1-based line or row number.
func (e *Error) At(path string, line int) *Error {
	next := *e
	next.path = path
	next.line = line
	return &next
}

// As returns err as an *Error, or nil when no *Error is in its chain.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
