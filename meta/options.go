package meta

import "github.com/hupe1980/hubgo/codec"

// Option configures Read and Write.
type Option func(*options)

type options struct {
	codec codec.Codec
}

// WithCodec sets the codec used to encode and decode records.
// Default: codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

func newOptions(opts []Option) options {
	o := options{codec: codec.Default}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
