// Package errors defines the coded error type shared by the picker packages.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers that branch on failure kind.
type Code string

const (
	CodeUnknown Code = "unknown"

	// Candidate validation
	CodeDuplicateCandidate Code = "duplicate_candidate"
	CodeInvalidCandidate   Code = "invalid_candidate"

	// Candidate sources
	CodeSourceFailed Code = "source_failed"
	CodeParseFailed  Code = "parse_failed"

	CodeConfigurationError Code = "configuration_error"
)

// Error carries a Code alongside a human-readable message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e Error) Unwrap() error {
	return e.Err
}

// New builds a coded error. err may be nil.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// Newf is New with a formatted message and no cause.
func Newf(code Code, format string, args ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the first Code found in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var coded Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// IsCode reports whether err's chain carries code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
