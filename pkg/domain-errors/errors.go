// Package domainerrors carries typed, recoverable errors across service and
// transport boundaries. Services wrap infrastructure failures with a Code so
// callers can decide between retry, cancel or ignore without string matching.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a failure. Codes are stable strings and double as the
// machine-readable error field of HTTP responses.
type Code string

const (
	CodeInternal           Code = "internal_error"
	CodeBadRequest         Code = "bad_request"
	CodeValidation         Code = "validation_error"
	CodeNotFound           Code = "not_found"
	CodeInvariantViolation Code = "invariant_violation"
	CodeCanceled           Code = "canceled"

	// CodeFetchFailed: the documents controller could not list documents.
	CodeFetchFailed Code = "fetch_failed"
	// CodeDeletionFailed: the documents controller rejected a deletion.
	CodeDeletionFailed Code = "deletion_failed"
	// CodePollQueryFailed: a deferred-issuance retry query failed. The poll
	// cycle halts and existing pending/failed markers are left untouched.
	CodePollQueryFailed Code = "poll_query_failed"
)

// Error is a coded domain error with an optional underlying cause.
type Error struct {
	Code    Code
	Message string
	Err     error
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

// New creates a coded error without a cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to err. A nil err yields the same result as New.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether any coded error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// CodeOf returns the outermost code in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf returns the outermost domain message, or a generic one for
// uncoded errors so internal details are not leaked to clients.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}
