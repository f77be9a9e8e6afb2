// Package storage provides the byte-addressed key-value providers that
// dataset records are persisted to.
//
// Provider is the interface every backend satisfies. Implementations must be
// safe for concurrent use and must report missing keys with an error that
// satisfies errors.Is(err, ErrNotFound).
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory map, for tests and ephemeral datasets
//   - LocalStore: files under a root directory, atomic writes via rename
//   - s3.Store / s3.DynamoStore: Amazon S3 and DynamoDB (subpackage s3)
//   - minio.Store: MinIO and other S3-compatible systems (subpackage minio)
//
// # Wrappers
//
//   - CachingStore: read-through LRU over any Provider
//   - CompressedStore: transparent zstd or lz4 value compression
//   - RateLimitedStore: bytes-per-second throttling
//
// Wrappers compose:
//
//	var p storage.Provider = storage.NewLocalStore("/data/ds")
//	p = storage.NewCompressedStore(p, storage.Zstd)
//	p = storage.NewCachingStore(p, 64<<20)
//
// # Custom Implementations
//
//	type Provider interface {
//	    Get(ctx, key) ([]byte, error)
//	    Set(ctx, key, value) error
//	}
//
// Implement Lister and Deleter as well to support enumeration and removal.
package storage
