package sample

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hupe1980/hubgo/internal/fs"
)

// Option configures a Sample.
type Option func(*Sample)

// WithRegistry sets the suffix registry used for format dispatch.
// If nil is passed, the built-in registry is used.
func WithRegistry(r *Registry) Option {
	return func(s *Sample) {
		if r == nil {
			r = builtin
		}
		s.registry = r
	}
}

// WithFileSystem sets the filesystem the sample is read from.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(s *Sample) {
		if fsys == nil {
			fsys = fs.Default
		}
		s.fs = fsys
	}
}

// Sample is a lazy handle to one file that decodes to an Array on demand.
//
// array and format are set together by the first successful Read and are
// never replaced afterwards.
type Sample struct {
	path     string
	registry *Registry
	fs       fs.FileSystem

	array  *Array
	format string
}

// New creates a sample for path. Nothing is read until the content is needed.
func New(path string, opts ...Option) *Sample {
	s := &Sample{
		path:     path,
		registry: builtin,
		fs:       fs.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the path the sample was created with.
func (s *Sample) Path() string { return s.path }

// Suffix returns the lower-cased file extension of the path.
func (s *Sample) Suffix() string {
	return strings.ToLower(filepath.Ext(s.path))
}

// WasRead reports whether the sample has been decoded successfully.
// It never triggers a decode.
func (s *Sample) WasRead() bool { return s.array != nil }

// RawBytes returns the file content verbatim. Every call reads the file again
// and the decode cache is neither consulted nor populated.
func (s *Sample) RawBytes() ([]byte, error) {
	data, err := fs.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, &ResourceIOError{Path: s.path, Err: err}
	}
	return data, nil
}

// Read decodes the sample on first use and returns the cached Array afterwards.
//
// Unsupported suffixes fail before the file is opened. Failed reads leave the
// cache empty so that a later call tries again.
func (s *Sample) Read() (*Array, error) {
	if s.array != nil {
		return s.array, nil
	}

	suffix := s.Suffix()
	format, ok := s.registry.Lookup(suffix)
	if !ok {
		return nil, &UnsupportedFormatError{Suffix: suffix, Supported: s.registry.Suffixes()}
	}

	data, err := fs.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, &ResourceIOError{Path: s.path, Err: err}
	}

	arr, tag, err := format.Decoder.Decode(data, format.Family)
	if err == nil {
		err = checkArray(arr)
	}
	if err == nil && tag == "" {
		err = fmt.Errorf("decoder reported no format for %s", format.Family)
	}
	if err != nil {
		return nil, &CorruptedError{Path: s.path, Err: err}
	}

	s.array, s.format = arr, tag
	return arr, nil
}

// Array is an alias for Read.
func (s *Sample) Array() (*Array, error) { return s.Read() }

// Shape returns the shape of the decoded array, decoding on first use.
func (s *Sample) Shape() ([]int, error) {
	arr, err := s.Read()
	if err != nil {
		return nil, err
	}
	return cloneShape(arr.Shape), nil
}

// DType returns the element type of the decoded array, decoding on first use.
func (s *Sample) DType() (DType, error) {
	arr, err := s.Read()
	if err != nil {
		return "", err
	}
	return arr.DType, nil
}

// Compression returns the format the decoder detected (e.g. "PNG").
// The tag is only as trustworthy as the decode that produced it; it is not
// validated independently.
func (s *Sample) Compression() (string, error) {
	if _, err := s.Read(); err != nil {
		return "", err
	}
	return s.format, nil
}

// String summarizes the sample without triggering a decode.
func (s *Sample) String() string {
	if s.array == nil {
		return fmt.Sprintf("Sample(was_read=false, path=%s)", s.path)
	}
	return fmt.Sprintf("Sample(was_read=true, shape=%s, compression=%s, dtype=%s, path=%s)",
		formatShape(s.array.Shape), s.format, s.array.DType, s.path)
}
