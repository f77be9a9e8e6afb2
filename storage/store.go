package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
)

// ErrNotFound is returned when a key does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidKey is returned for keys that are empty or escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// ErrListUnsupported is returned by wrappers whose inner provider cannot list keys.
var ErrListUnsupported = errors.New("provider does not support listing")

// Provider is a byte-addressed key-value store.
type Provider interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

// Lister is implemented by providers that can enumerate keys.
type Lister interface {
	// List returns all keys with the given prefix in sorted order.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Deleter is implemented by providers that can remove keys.
type Deleter interface {
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Store is a Provider that can also list and delete.
type Store interface {
	Provider
	Lister
	Deleter
}

// NotFoundError wraps ErrNotFound with the missing key.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// CleanKey normalizes key to a slash-separated relative path.
// It rejects empty keys and keys that escape the root.
func CleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))[1:]
	if cleaned == "" || strings.HasPrefix(key, "/") || strings.Contains("/"+key+"/", "/../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return cleaned, nil
}
