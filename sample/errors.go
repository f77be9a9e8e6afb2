package sample

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat matches every *UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported sample format")

	// ErrCorrupted matches every *CorruptedError.
	ErrCorrupted = errors.New("sample corrupted")

	// ErrResourceIO matches every *ResourceIOError.
	ErrResourceIO = errors.New("sample resource unreadable")
)

// UnsupportedFormatError is returned when a path suffix has no registered format.
type UnsupportedFormatError struct {
	Suffix    string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file extension %q (supported: %s)", e.Suffix, strings.Join(e.Supported, ", "))
}

func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

// CorruptedError is returned when a file was read but could not be decoded.
//
// The decoder error can be accessed via errors.Unwrap.
type CorruptedError struct {
	Path string
	Err  error
}

func (e *CorruptedError) Error() string {
	return fmt.Sprintf("sample %q is corrupted: %v", e.Path, e.Err)
}

func (e *CorruptedError) Unwrap() error { return e.Err }

func (e *CorruptedError) Is(target error) bool { return target == ErrCorrupted }

// ResourceIOError is returned when the backing file cannot be opened or read.
type ResourceIOError struct {
	Path string
	Err  error
}

func (e *ResourceIOError) Error() string {
	return fmt.Sprintf("read sample %q: %v", e.Path, e.Err)
}

func (e *ResourceIOError) Unwrap() error { return e.Err }

func (e *ResourceIOError) Is(target error) bool { return target == ErrResourceIO }
