package s3

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
)

// Option configures New and NewDynamo.
type Option func(*options)

type options struct {
	prefix   string
	region   string
	endpoint string
	partSize int64
}

// WithPrefix scopes every key under prefix (e.g. "datasets/mnist").
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRegion overrides the region from the shared AWS config.
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithEndpoint points the client at a custom endpoint such as LocalStack.
// S3 requests switch to path-style addressing.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithPartSize sets the multipart upload part size. Default: 8MB.
func WithPartSize(size int64) Option {
	return func(o *options) {
		if size >= manager.MinUploadPartSize {
			o.partSize = size
		}
	}
}

func newOptions(opts []Option) options {
	o := options{partSize: 8 << 20}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) loadOptions() []func(*config.LoadOptions) error {
	var lo []func(*config.LoadOptions) error
	if o.region != "" {
		lo = append(lo, config.WithRegion(o.region))
	}
	return lo
}

// normalizePrefix strips slashes and appends a single trailing slash to
// non-empty prefixes so that "a" never matches keys under "ab/".
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}
