package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrReference  = errors.New("unresolved reference")
)

var (
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)
	ErrTagNotFound  = fmt.Errorf("tag %w", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrTagNameTaken = fmt.Errorf("tag name already in use: %w", ErrConflict)
)

// ValidationError reports invalid input, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ReferenceError reports ids in Field that do not resolve to stored records.
type ReferenceError struct {
	Field string
	IDs   []uuid.UUID
}

func (e *ReferenceError) Error() string {
	ids := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("%s: %s [%s]", ErrReference, e.Field, strings.Join(ids, ", "))
}

func (e *ReferenceError) Unwrap() error {
	return ErrReference
}
