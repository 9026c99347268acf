package listings

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every lookup that finds no row for the requested id.
var ErrNotFound = errors.New("not found")

func notFound(kind string, id uint) error {
	return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
}

// IntegrityError reports a show whose artist or venue could not be resolved.
type IntegrityError struct {
	ShowID uint
	Field  string
	Value  uint
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("show %d references missing %s %d", e.ShowID, e.Field, e.Value)
}

// ReferenceError is returned when a submitted show points at an artist or venue
// that does not exist.
type ReferenceError struct {
	Kind string
	ID   uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("no %s with id %d", e.Kind, e.ID)
}
