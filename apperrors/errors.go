package apperrors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ValidationError is returned when a write is missing required data.
// The store is never touched when this error is produced.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %v", e.Fields)
}

// NotFoundError reports that no row matched the requested id.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// StorageError wraps any failure coming from the underlying store. Its
// message is the store's own message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewValidation(fields ...string) error {
	return &ValidationError{Fields: fields}
}

func NewNotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewStorage tags err as a store failure of op. A nil err yields nil.
func NewStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&StorageError{Op: op, Err: err})
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}
