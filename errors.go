package hubgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hubgo/meta"
	"github.com/hupe1980/hubgo/sample"
	"github.com/hupe1980/hubgo/storage"
)

var (
	// ErrUnsupportedFormat is matched by errors for paths whose suffix has no registered format.
	ErrUnsupportedFormat = sample.ErrUnsupportedFormat

	// ErrCorrupted is matched by errors for files that exist but do not decode.
	ErrCorrupted = sample.ErrCorrupted

	// ErrResourceIO is matched by errors for files that cannot be read.
	ErrResourceIO = sample.ErrResourceIO

	// ErrMetadataMissing is matched when no metadata record has been written.
	ErrMetadataMissing = meta.ErrMissing

	// ErrMetadataMalformed is matched when a stored metadata record does not decode.
	ErrMetadataMalformed = errors.New("metadata record malformed")

	// ErrBackend is matched by storage provider failures other than a missing key.
	ErrBackend = errors.New("storage backend failure")

	// ErrNotFound is matched by storage errors for missing keys.
	ErrNotFound = storage.ErrNotFound

	// ErrUnsupportedScheme is returned by OpenStorage for unknown URL schemes.
	ErrUnsupportedScheme = storage.ErrUnsupportedScheme
)

// translateError attaches the package sentinels to errors from the
// subpackages that do not already carry one. The original error stays
// in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var me *meta.MalformedError
	if errors.As(err, &me) {
		return fmt.Errorf("%w: %w", ErrMetadataMalformed, err)
	}
	var be *meta.BackendError
	if errors.As(err, &be) {
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return err
}
