package codec

import (
	"encoding/json"
	"io"
)

// JSON is the encoding/json codec.
type JSON struct{}

// Encode encodes v to JSON.
func (JSON) Encode(v any) ([]byte, error) { return json.Marshal(v) }

// Decode parses data, keeping integer precision.
func (JSON) Decode(data []byte) (any, error) {
	return decode(data, json.Valid, func(r io.Reader) numberDecoder {
		return json.NewDecoder(r)
	})
}

// Name returns "json".
func (JSON) Name() string { return "json" }
