package utils

import (
	"errors"
	"fmt"
)

// ErrNotFound covers a missing entity, an entity that does not belong to the
// given parent, and an edit attempted by a non-owner. The three cases are
// deliberately indistinguishable to the caller.
var ErrNotFound = errors.New("not found")

type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ConflictError reports a store-level uniqueness violation on a single field.
type ConflictError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %s", e.Field, e.Message)
}
