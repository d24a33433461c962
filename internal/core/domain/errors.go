package domain

import (
	"errors"
	"fmt"
)

var (
	ErrReferenceNotFound = errors.New("reference not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrStillReferenced   = errors.New("record is still referenced")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// ReferenceNotFoundError is returned for any identity or foreign-key lookup
// that does not resolve to a persisted record.
type ReferenceNotFoundError struct {
	Entity Entity
	ID     int64
}

func NotFound(entity Entity, id int64) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Entity: entity, ID: id}
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with the id '%d' not found", e.Entity, e.ID)
}

func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

// ConstraintViolationError reports a uniqueness conflict on a single field.
type ConstraintViolationError struct {
	Entity Entity
	Field  string
}

func (e *ConstraintViolationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s already exists", e.Entity)
	}
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrDuplicate
}

// StillReferencedError is returned when a delete is blocked by dependents.
type StillReferencedError struct {
	Entity Entity
	ID     int64
}

func (e *StillReferencedError) Error() string {
	return fmt.Sprintf("%s with the id '%d' is still referenced", e.Entity, e.ID)
}

func (e *StillReferencedError) Is(target error) bool {
	return target == ErrStillReferenced
}
