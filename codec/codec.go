// Package codec encodes and decodes the JSON metadata records stored next to
// a dataset.
//
// Every codec here writes plain UTF-8 JSON, so a record written with one
// codec can be read with any other. Decoded records carry numbers as int64
// when the literal is an integer that fits, uint64 when it only fits
// unsigned, and float64 otherwise. Integers above 2^53 therefore survive a
// round trip exactly.
package codec

import (
	"bytes"
	"errors"
	"io"
)

// ErrInvalidJSON is returned when the input is not exactly one JSON value.
var ErrInvalidJSON = errors.New("codec: invalid JSON document")

// Codec encodes and decodes metadata records.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Encode serializes v.
	Encode(v any) ([]byte, error)
	// Decode parses a single JSON value. Objects become map[string]any,
	// arrays []any; numbers follow the package rules.
	Decode(data []byte) (any, error)
	// Name returns a stable identifier, used in log and error output.
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}

// numberDecoder is the streaming decoder surface shared by encoding/json and
// goccy/go-json.
type numberDecoder interface {
	UseNumber()
	Decode(v any) error
}

func decode(data []byte, valid func([]byte) bool, newDecoder func(io.Reader) numberDecoder) (any, error) {
	// The streaming decoder stops after the first value; trailing bytes
	// would otherwise go unnoticed.
	if !valid(data) {
		return nil, ErrInvalidJSON
	}

	dec := newDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}
