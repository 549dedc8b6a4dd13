package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDomain is the kind shared by every grading rule violation.
var ErrDomain = errors.New("domain error")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error {
	return err.Err
}

// DomainError reports a broken grading rule: an out-of-range grade, weight or
// policy value, or an evaluation set that cannot be averaged.
type DomainError struct {
	Op      string
	Message string
}

func NewDomainError(op, format string, args ...interface{}) error {
	return &DomainError{Op: op, Message: fmt.Sprintf(format, args...)}
}

func (err *DomainError) Error() string {
	return err.Message
}

func (err *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// IsDomainError reports whether the cause of `err` is a *DomainError.
func IsDomainError(err error) bool {
	_, ok := errors.Cause(err).(*DomainError)
	return ok
}
