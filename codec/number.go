package codec

import (
	"strconv"
	"strings"
)

// number is satisfied by the literal types produced with UseNumber.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// normalize replaces number literals in v, recursively, with int64, uint64
// or float64 values.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	case number:
		return parseNumber(t)
	default:
		return v
	}
}

func parseNumber(n number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}

	s := n.String()
	if !strings.ContainsAny(s, ".eE-") {
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u
		}
	}

	// Valid JSON numbers always parse; out of range values come back as ±Inf
	// with a range error, which is the closest float64.
	f, _ := n.Float64()
	return f
}
