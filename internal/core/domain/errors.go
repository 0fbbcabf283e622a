package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidConvention indicates an unknown weekday numbering convention.
	ErrInvalidConvention = errors.New("invalid weekday convention")

	// ErrDateResolution matches every *DateResolutionError via errors.Is.
	ErrDateResolution = errors.New("date resolution failed")
)

// Spreadsheet error codes surfaced as formula values.
const (
	// ErrorCodeValue is returned for input that is not a date.
	ErrorCodeValue = "#VALUE!"

	// ErrorCodeNum is returned for numeric input outside the date range.
	ErrorCodeNum = "#NUM!"
)

// DateResolutionError reports that an input could not be converted to a
// CanonicalDate. Its Error string is the spreadsheet error code so hosts can
// display it verbatim as a cell value.
type DateResolutionError struct {
	// Input is the raw value that failed to resolve.
	Input any

	// Code is the spreadsheet error code (ErrorCodeValue or ErrorCodeNum).
	Code string

	// Reason is a human-readable detail for logs. Not part of Error().
	Reason string
}

// NewValueError creates a #VALUE! resolution error.
func NewValueError(input any, reason string) *DateResolutionError {
	return &DateResolutionError{Input: input, Code: ErrorCodeValue, Reason: reason}
}

// NewNumError creates a #NUM! resolution error.
func NewNumError(input any, reason string) *DateResolutionError {
	return &DateResolutionError{Input: input, Code: ErrorCodeNum, Reason: reason}
}

// Error returns the spreadsheet error code.
func (e *DateResolutionError) Error() string {
	return e.Code
}

// Is reports whether target is ErrDateResolution.
func (e *DateResolutionError) Is(target error) bool {
	return target == ErrDateResolution
}
