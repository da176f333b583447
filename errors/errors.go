// Package errors provides error handling for tabmill.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for the scan pipeline's failure taxonomy
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidHeaderRow) {
//	    // handle bad header
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors for the scan pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidHeaderRow indicates the header row contains a blank or
	// null-like token, so no schema can be derived. Fatal to the run.
	ErrInvalidHeaderRow = New("invalid header row")

	// ErrColumnCountMismatch indicates a data row's field count disagrees
	// with the schema. The row is rejected; the run continues.
	ErrColumnCountMismatch = New("column count mismatch")

	// ErrFieldTypeMismatch indicates a data row field failed its schema
	// type's pattern. The row is rejected; the run continues.
	ErrFieldTypeMismatch = New("field type mismatch")

	// ErrEmptyAcceptedSet indicates validation completed with zero accepted
	// rows, which suppresses table presentation.
	ErrEmptyAcceptedSet = New("no rows accepted")

	// ErrFileNotFound indicates the input file is missing or unreadable.
	ErrFileNotFound = New("input file not found")

	// ErrEmptyInput indicates the input file contained no non-blank lines.
	ErrEmptyInput = New("empty input")
)

// IsInvalidHeaderRow checks if an error is or wraps ErrInvalidHeaderRow
func IsInvalidHeaderRow(err error) bool {
	return err != nil && Is(err, ErrInvalidHeaderRow)
}

// IsFileNotFound checks if an error is or wraps ErrFileNotFound
func IsFileNotFound(err error) bool {
	return err != nil && Is(err, ErrFileNotFound)
}

// IsEmptyInput checks if an error is or wraps ErrEmptyInput
func IsEmptyInput(err error) bool {
	return err != nil && Is(err, ErrEmptyInput)
}

// NewInvalidHeaderRow creates an invalid-header error with a formatted message
func NewInvalidHeaderRow(format string, args ...interface{}) error {
	return Wrap(ErrInvalidHeaderRow, Newf(format, args...).Error())
}
