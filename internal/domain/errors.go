package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryResolution = errors.New("cannot resolve application data directory")
	ErrIO                  = errors.New("storage io failure")
	ErrCodec               = errors.New("document codec failure")
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")

	ErrTodoNotFound = fmt.Errorf("todo %w", ErrNotFound)
)

// IOError reports a filesystem failure while touching a document or backup.
type IOError struct {
	Op       string
	Document string
	Err      error
}

func (e *IOError) Error() string {
	if e.Document == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Document, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// CodecError reports content that cannot be mapped to or from a document
// shape. Op is "decode" or "encode".
type CodecError struct {
	Op       string
	Document string
	Err      error
}

func (e *CodecError) Error() string {
	op := e.Op
	if op == "" {
		op = "codec"
	}
	return fmt.Sprintf("%s %s: %v", op, e.Document, e.Err)
}

func (e *CodecError) Unwrap() []error {
	return []error{ErrCodec, e.Err}
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%v: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
