package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthentication reports an unknown login or a wrong password.
	ErrAuthentication = errors.New("authentication_failed")

	// ErrLookup reports an unknown login or a token mismatch.
	ErrLookup = errors.New("lookup_failed")

	// ErrStorage reports that a record source could not be read or written.
	ErrStorage = errors.New("storage_failed")
)

// StorageError wraps an I/O failure on a named source.
type StorageError struct {
	Op     string // "load" or "save"
	Source string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrStorage) hold for every StorageError.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// NewStorageError returns a StorageError, or nil when err is nil.
func NewStorageError(op, source string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Source: source, Err: err}
}
