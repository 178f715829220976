package usersetting

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("invalid user setting")
	// ErrExecutorNil is returned when no executor was passed in.
	ErrExecutorNil = errors.New("user setting executor is nil")
	// ErrUnknownDialect is returned for a store dialect without statement support.
	ErrUnknownDialect = errors.New("unknown sql dialect")
)

// ValidationError reports missing required fields. It is returned before any
// statement is built.
type ValidationError struct {
	Key    string
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields for user setting %q: %s", e.Key, strings.Join(e.Fields, ", "))
}

// Is makes errors.Is(err, ErrValidation) work.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UnknownValueTypeError is returned by ParseValueType.
type UnknownValueTypeError struct {
	Value string
}

// Error implements the error interface.
func (e *UnknownValueTypeError) Error() string {
	return fmt.Sprintf("unknown user setting value type %q", e.Value)
}

// BatchError wraps the first failure of AddUserSettings with the position of
// the failing entry. The underlying error is available through Unwrap.
type BatchError struct {
	Index int
	Key   string
	Err   error
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	return fmt.Sprintf("user setting #%d (%q): %v", e.Index, e.Key, e.Err)
}

// Unwrap returns the error of the failing entry.
func (e *BatchError) Unwrap() error {
	return e.Err
}
