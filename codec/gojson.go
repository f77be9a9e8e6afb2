package codec

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// GoJSON is a codec backed by github.com/goccy/go-json.
//
// Its output is interchangeable with JSON.
type GoJSON struct{}

// Encode encodes v to JSON.
func (GoJSON) Encode(v any) ([]byte, error) { return gojson.Marshal(v) }

// Decode parses data, keeping integer precision.
func (GoJSON) Decode(data []byte) (any, error) {
	return decode(data, gojson.Valid, func(r io.Reader) numberDecoder {
		return gojson.NewDecoder(r)
	})
}

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
