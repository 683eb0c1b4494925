package store

import "errors"

var (
	// ErrNotFound covers true absence, foreign ownership, and soft deletion
	// alike; callers cannot tell which applied.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateTitle signals that a live recipe with the same title
	// already exists for this owner.
	ErrDuplicateTitle = errors.New("duplicate recipe title")
)

// StorageError is the opaque outcome for any backing-store failure. Its
// message never carries driver text; the wrapped error stays reachable via
// errors.Unwrap for logging inside the process.
type StorageError struct {
	Op  string
	err error
}

func (e *StorageError) Error() string {
	return "storage failure during " + e.Op
}

func (e *StorageError) Unwrap() error {
	return e.err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, err: err}
}
