// Package apperrors defines the recoverable error kinds the engine reports
// and their mapping to HTTP status codes. Controllers translate these with
// Status(); anything unrecognized is treated as an internal fault.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InsufficientDataError reports that an operation has too little data to
// proceed: no meals satisfy a slot's constraints, or a training dataset is
// empty / has too few labels.
type InsufficientDataError struct {
	Message string
	// Slot is set when a meal-plan slot could not be filled.
	Slot string
	// MinimumRequired is set when a dataset misses a row/label count.
	MinimumRequired int
}

func (e *InsufficientDataError) Error() string { return e.Message }

func NewInsufficientData(message string) *InsufficientDataError {
	return &InsufficientDataError{Message: message}
}

// NewEmptySlot reports a plan slot with zero eligible meals after filtering.
func NewEmptySlot(slot, preference string, allergies []string) *InsufficientDataError {
	return &InsufficientDataError{
		Slot: slot,
		Message: fmt.Sprintf(
			"no eligible meals for slot %q (preference=%s, allergies=%v)",
			slot, preference, allergies),
	}
}

// ModelNotTrainedError is returned by predictions issued before any
// successful train or artifact load.
type ModelNotTrainedError struct{}

func (e *ModelNotTrainedError) Error() string {
	return "model not trained: train it first via POST /api/diet/train"
}

// NotFoundError reports an unknown resource id.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id '%v' not found", e.Resource, e.ID)
}

func NewNotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// Status maps an error to its stable HTTP status category.
func Status(err error) int {
	var ve *ValidationError
	var ie *InsufficientDataError
	var ne *NotFoundError
	var me *ModelNotTrainedError
	switch {
	case errors.As(err, &ve), errors.As(err, &ie):
		return http.StatusBadRequest
	case errors.As(err, &ne):
		return http.StatusNotFound
	case errors.As(err, &me):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
