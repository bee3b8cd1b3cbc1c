package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Store Errors.

	// ErrNotInitialised indicates a store operation was invoked before
	// the store was initialised.
	ErrNotInitialised = errors.New("store not initialised")

	// ErrStorage indicates the storage engine rejected a read or write.
	// Concrete failures are reported as *StorageError, which matches
	// ErrStorage under errors.Is.
	ErrStorage = errors.New("storage engine error")
)

// StorageError wraps a failure reported by the underlying storage engine
// (disk failure, malformed statement, constraint violation).
type StorageError struct {
	// Op names the store operation that failed, e.g. "create".
	Op string

	// Err is the error returned by the engine.
	Err error
}

// NewStorageError wraps err as a StorageError for op.
// Returns nil if err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage, e.Op, e.Err)
}

// Unwrap returns the engine error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
