package hubgo

import (
	"runtime"

	"github.com/hupe1980/hubgo/codec"
	"github.com/hupe1980/hubgo/sample"
	"github.com/hupe1980/hubgo/storage"
)

type options struct {
	codec            codec.Codec
	metricsCollector MetricsCollector
	logger           *Logger
	workers          int
	sampleOptions    []sample.Option

	// OpenStorage wrappers.
	cacheBytes  int64
	compression storage.Compression
	rateLimit   int
}

// Option configures the package-level operations.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		workers:          runtime.GOMAXPROCS(0),
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithCodec configures the codec used for metadata records.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithMetricsCollector sets the collector that receives operational metrics.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger sets the logger. Logging is disabled by default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithWorkers bounds the number of samples LoadAll decodes concurrently.
// Default: GOMAXPROCS. Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithRegistry sets the suffix registry used by LoadAll.
func WithRegistry(r *sample.Registry) Option {
	return func(o *options) {
		o.sampleOptions = append(o.sampleOptions, sample.WithRegistry(r))
	}
}

// WithSampleOptions passes options through to every sample LoadAll creates.
func WithSampleOptions(opts ...sample.Option) Option {
	return func(o *options) {
		o.sampleOptions = append(o.sampleOptions, opts...)
	}
}

// WithCache makes OpenStorage wrap the provider in a read cache holding at
// most capacity bytes.
func WithCache(capacity int64) Option {
	return func(o *options) {
		o.cacheBytes = capacity
	}
}

// WithCompression makes OpenStorage compress values with algo.
func WithCompression(algo storage.Compression) Option {
	return func(o *options) {
		o.compression = algo
	}
}

// WithRateLimit makes OpenStorage throttle the provider to bytesPerSec.
func WithRateLimit(bytesPerSec int) Option {
	return func(o *options) {
		o.rateLimit = bytesPerSec
	}
}
