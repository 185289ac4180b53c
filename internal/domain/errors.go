package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInterval    = errors.New("invalid watering interval")
	ErrDuplicatePlantID   = errors.New("duplicate plant id")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// InvalidIntervalError is returned when a plant's watering interval cannot
// drive a schedule (zero or negative days).
type InvalidIntervalError struct {
	PlantID  int
	Interval int
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("plant %d: watering interval must be >= 1 day (got %d)", e.PlantID, e.Interval)
}

func (e *InvalidIntervalError) Unwrap() error { return ErrInvalidInterval }

// DuplicatePlantIDError reports an id-assignment collision in the plant collection.
type DuplicatePlantIDError struct {
	ID int
}

func (e *DuplicatePlantIDError) Error() string {
	return fmt.Sprintf("plant id %d already in use", e.ID)
}

func (e *DuplicatePlantIDError) Unwrap() error { return ErrDuplicatePlantID }

// StorageUnavailableError wraps a failed load or save against durable storage.
// Op is "load" or "save"; Name is the record name.
type StorageUnavailableError struct {
	Op   string
	Name string
	Err  error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Name, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is/As.
func (e *StorageUnavailableError) Unwrap() []error {
	return []error{ErrStorageUnavailable, e.Err}
}
