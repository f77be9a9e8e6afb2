package hubgo

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hupe1980/hubgo/keys"
	"github.com/hupe1980/hubgo/meta"
	"github.com/hupe1980/hubgo/sample"
	"github.com/hupe1980/hubgo/storage"
	"github.com/hupe1980/hubgo/storage/minio"
	"github.com/hupe1980/hubgo/storage/s3"
	"golang.org/x/sync/errgroup"
)

// Sample is a lazy handle to one file that decodes to an array on demand.
type Sample = sample.Sample

// Load returns a lazy handle to the file at path. No I/O happens until the
// sample's array, shape, dtype or compression is requested.
func Load(path string, opts ...sample.Option) *Sample {
	return sample.New(path, opts...)
}

// LoadAll decodes the files at paths with a bounded worker pool.
//
// Each sample is decoded by exactly one worker. The first failure cancels
// the work not yet started and is returned; the returned slice always has
// len(paths) entries, in order, and samples that were not reached are
// unread.
func LoadAll(ctx context.Context, paths []string, opts ...Option) ([]*Sample, error) {
	o := newOptions(opts)
	start := time.Now()

	samples := make([]*Sample, len(paths))
	for i, p := range paths {
		samples[i] = sample.New(p, o.sampleOptions...)
	}

	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for _, s := range samples {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			t := time.Now()
			_, err := s.Array()

			// A failed sample has no format; asking for it would decode again.
			var format string
			if err == nil {
				format, _ = s.Compression()
			}

			o.metricsCollector.RecordDecode(format, time.Since(t), err)
			o.logger.LogDecode(gctx, s.Path(), format, err)

			if err != nil {
				failed.Add(1)
				return err
			}
			return nil
		})
	}

	err := g.Wait()

	o.metricsCollector.RecordBatchLoad(len(paths), int(failed.Load()), time.Since(start))
	o.logger.LogBatchLoad(ctx, len(paths), int(failed.Load()))

	return samples, translateError(err)
}

// WriteDatasetMeta persists record as the dataset metadata of p.
func WriteDatasetMeta(ctx context.Context, p storage.Provider, record meta.DatasetMeta, opts ...Option) error {
	o := newOptions(opts)
	start := time.Now()

	err := meta.Write(ctx, p, record, meta.WithCodec(o.codec))

	o.metricsCollector.RecordMetaWrite(time.Since(start), err)
	o.logger.LogMetaWrite(ctx, keys.DatasetMeta, err)

	return translateError(err)
}

// ReadDatasetMeta loads the dataset metadata of p.
func ReadDatasetMeta(ctx context.Context, p storage.Provider, opts ...Option) (meta.DatasetMeta, error) {
	o := newOptions(opts)
	start := time.Now()

	record, err := meta.Read(ctx, p, meta.WithCodec(o.codec))

	o.metricsCollector.RecordMetaRead(time.Since(start), err)
	o.logger.LogMetaRead(ctx, keys.DatasetMeta, err)

	if err != nil {
		return nil, translateError(err)
	}
	return record, nil
}

// OpenStorage resolves a storage URL to a provider and applies the
// WithCompression, WithRateLimit and WithCache wrappers, innermost first.
func OpenStorage(ctx context.Context, url string, opts ...Option) (storage.Store, error) {
	o := newOptions(opts)

	store, err := openStore(ctx, url)
	o.logger.LogOpenStorage(ctx, url, err)
	if err != nil {
		return nil, err
	}

	if o.compression != storage.None {
		store = storage.NewCompressedStore(store, o.compression)
	}
	if o.rateLimit > 0 {
		store = storage.NewRateLimitedStore(store, o.rateLimit)
	}
	if o.cacheBytes > 0 {
		store = storage.NewCachingStore(store, o.cacheBytes)
	}
	return store, nil
}

func openStore(ctx context.Context, url string) (storage.Store, error) {
	loc, err := storage.ParseLocation(url)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(loc.Scheme) {
	case "s3", "dynamodb", "ddb":
		return s3.Open(ctx, url)
	case "minio", "minios":
		s, err := minio.Open(ctx, url)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "mem", "memory", "file":
		return storage.Open(url)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
	}
}
