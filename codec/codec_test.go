package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codecs = []Codec{JSON{}, GoJSON{}}

func TestCodecs_Interchangeable(t *testing.T) {
	record := map[string]any{
		"version": int64(1),
		"ratio":   0.25,
		"tensors": []any{"images", "labels"},
		"info":    map[string]any{"license": nil, "public": true},
	}

	for _, enc := range codecs {
		for _, dec := range codecs {
			t.Run(enc.Name()+"->"+dec.Name(), func(t *testing.T) {
				data, err := enc.Encode(record)
				require.NoError(t, err)

				got, err := dec.Decode(data)
				require.NoError(t, err)
				assert.Equal(t, record, got)
			})
		}
	}
}

func TestDecode_Numbers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"SmallInt", `7`, int64(7)},
		{"Negative", `-12`, int64(-12)},
		{"AboveFloatPrecision", `9007199254740993`, int64(9007199254740993)},
		{"MaxInt64", `9223372036854775807`, int64(math.MaxInt64)},
		{"MinInt64", `-9223372036854775808`, int64(math.MinInt64)},
		{"Uint64", `18446744073709551615`, uint64(math.MaxUint64)},
		{"Fraction", `0.5`, 0.5},
		{"IntegralFraction", `2.0`, float64(2)},
		{"Exponent", `1e3`, float64(1000)},
		{"BeyondUint64", `18446744073709551616`, float64(18446744073709551616)},
		{"Nested", `{"a":[1,{"b":2.5}]}`, map[string]any{"a": []any{int64(1), map[string]any{"b": 2.5}}}},
	}

	for _, c := range codecs {
		for _, tt := range tests {
			t.Run(c.Name()+"/"+tt.name, func(t *testing.T) {
				got, err := c.Decode([]byte(tt.in))
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestEncodeDecode_LargeIntegersExact(t *testing.T) {
	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Encode(map[string]any{"n": int64(9007199254740993)})
			require.NoError(t, err)
			assert.JSONEq(t, `{"n":9007199254740993}`, string(data))

			got, err := c.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"n": int64(9007199254740993)}, got)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	inputs := []string{``, `{`, `{"a":1}x`, `{"a":1} {"b":2}`, `not json`}

	for _, c := range codecs {
		for _, in := range inputs {
			_, err := c.Decode([]byte(in))
			assert.ErrorIs(t, err, ErrInvalidJSON, "%s: %q", c.Name(), in)
		}
	}
}

func TestDecode_TrailingWhitespace(t *testing.T) {
	for _, c := range codecs {
		got, err := c.Decode([]byte(" {\"a\":true}\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": true}, got)
	}
}
