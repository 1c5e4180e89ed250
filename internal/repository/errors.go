package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NotFoundError signals that a lookup by id, slug or key matched no row.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError signals that a write would violate a natural-key constraint,
// or that a delete is blocked by dependent rows.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func duplicateErr(resource, field string) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf("%s with this %s already exists", resource, field)}
}

// notFound maps gorm's record-not-found onto an entity-specific error and
// passes every other store error through unchanged.
func notFound(resource string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return err
}
