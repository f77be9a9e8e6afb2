package meta

import (
	"errors"
	"fmt"
)

// ErrMissing is returned by Read when no record exists under the key.
//
// The provider's not-found error stays in the chain, so
// errors.Is(err, storage.ErrNotFound) also holds.
var ErrMissing = errors.New("metadata record missing")

// MalformedError indicates stored bytes that do not decode to a JSON object,
// or a record that cannot be encoded.
type MalformedError struct {
	Key string
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed metadata record %q: %v", e.Key, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// BackendError wraps a storage provider failure.
type BackendError struct {
	Op  string // "read" or "write"
	Key string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s metadata record %q: %v", e.Op, e.Key, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
