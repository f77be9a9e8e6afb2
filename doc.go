// Package hubgo provides lazy sample loading and dataset metadata persistence
// for array datasets.
//
// A dataset is a set of samples (image files decoded on demand into typed
// n-dimensional arrays) plus a small JSON metadata record persisted under a
// canonical key in a pluggable key-value store.
//
// # Quick Start
//
// Samples:
//
//	s := hubgo.Load("images/cat.png")  // no I/O yet
//	arr, err := s.Array()              // reads and decodes once
//	fmt.Println(s)                     // Sample(was_read=true, shape=(10, 10, 3), ...)
//
// Many samples in parallel:
//
//	samples, err := hubgo.LoadAll(ctx, paths, hubgo.WithWorkers(8))
//
// Metadata:
//
//	store, _ := hubgo.OpenStorage(ctx, "s3://my-bucket/datasets/mnist")
//	err := hubgo.WriteDatasetMeta(ctx, store, meta.DatasetMeta{"version": 1})
//	m, err := hubgo.ReadDatasetMeta(ctx, store)
//
// # Storage
//
// OpenStorage resolves a URL to a provider:
//
//	mem://                        in-memory
//	/data/ds, file:///data/ds     local directory
//	s3://bucket/prefix            Amazon S3
//	dynamodb://table/prefix       DynamoDB table
//	minio://host:port/bucket/pfx  MinIO (minios:// for TLS)
//
// Providers can be wrapped with a read cache, value compression and a
// bandwidth limit:
//
//	store, _ := hubgo.OpenStorage(ctx, "/data/ds",
//	    hubgo.WithCompression(storage.Zstd),
//	    hubgo.WithCache(64<<20),
//	)
//
// # Errors
//
// Every failure is a typed error matching one of the package sentinels:
//
//	_, err := s.Array()
//	switch {
//	case errors.Is(err, hubgo.ErrUnsupportedFormat):
//	case errors.Is(err, hubgo.ErrCorrupted):
//	case errors.Is(err, hubgo.ErrResourceIO):
//	}
//
// # Observability
//
// Logging uses log/slog through Logger and is off by default. Metrics go to
// a MetricsCollector:
//
//	mc := &hubgo.BasicMetricsCollector{}
//	samples, err := hubgo.LoadAll(ctx, paths,
//	    hubgo.WithLogger(hubgo.NewJSONLogger(slog.LevelDebug)),
//	    hubgo.WithMetricsCollector(mc),
//	)
//	fmt.Println(mc.GetStats().DecodeCount)
package hubgo
