package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every input rejection raised before a write.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate is matched by a PersistenceError caused by a uniqueness violation.
	ErrDuplicate = errors.New("duplicate value")
)

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DateFormatError reports a date that does not parse as DD/MM/YYYY.
type DateFormatError struct {
	Input string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q, expected DD/MM/YYYY", e.Input)
}

func (e *DateFormatError) Unwrap() error { return e.Err }

func (e *DateFormatError) Is(target error) bool { return target == ErrValidation }

// PersistenceError wraps a failed store operation.
type PersistenceError struct {
	Op        string
	Err       error
	Duplicate bool
}

func (e *PersistenceError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("%s: %v: %v", e.Op, ErrDuplicate, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool {
	return e.Duplicate && target == ErrDuplicate
}
