package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no document exists for the given identifier
var ErrNotFound = errors.New("not found")

// InvalidIDError is returned when an identifier does not parse as a canonical UUID
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid resume id %q: must be a canonical UUID", e.ID)
}

// PathEscapeError is returned when a resolved path would fall outside the storage root
type PathEscapeError struct {
	Path string
}

func (e *PathEscapeError) Error() string {
	return fmt.Sprintf("path %q escapes the storage root", e.Path)
}

// WriteError represents a failure to persist a document
type WriteError struct {
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("write failed: %s", e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
