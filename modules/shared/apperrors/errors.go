// Package apperrors defines the error taxonomy shared by all modules.
// Each kind maps to one HTTP status at the transport boundary.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError is returned when client input is malformed or incomplete.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError is returned when the requested resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: id=%s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Message is the client-facing text, e.g. "Pedido no encontrado".
func (e *NotFoundError) Message() string {
	return e.Resource + " no encontrado"
}

// ForbiddenError is returned by endpoints that are disabled for external use.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// StoreError wraps a failure of the underlying document store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewNotFoundError creates a NotFoundError wrapping a sentinel such as ErrOrderNotFound.
func NewNotFoundError(resource, id string, sentinel error) error {
	return &NotFoundError{Resource: resource, ID: id, Err: sentinel}
}

// NewForbiddenError creates a ForbiddenError.
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewStoreError wraps err as a StoreError. A nil err stays nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}

func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
