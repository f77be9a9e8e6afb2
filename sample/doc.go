// Package sample provides lazy, format-aware handles over sample files.
//
// A [Sample] wraps a path and defers reading and decoding the file until its
// content is needed. The first successful decode is cached; later calls to
// [Sample.Read], [Sample.Shape], [Sample.DType] or [Sample.Compression] return
// the cached result without touching the file again.
//
// # Format Dispatch
//
// The file suffix (case-insensitive) selects a [Format] from a [Registry].
// The same table drives dispatch and the supported set reported by
// [UnsupportedFormatError], so both always agree:
//
//	s := sample.New("photo.png")
//	shape, err := s.Shape() // decodes once
//	tag, _ := s.Compression() // "PNG", served from cache
//
// The default registry maps .jpeg, .jpg and .png to [ImageDecoder].
//
// # Failure Modes
//
//   - [UnsupportedFormatError]: suffix not registered, raised before any I/O
//   - [ResourceIOError]: the file could not be opened or read
//   - [CorruptedError]: the decoder rejected the content
//
// Failures are never cached. A later Read attempts the decode again.
//
// # Thread Safety
//
// A Sample is not safe for concurrent Read calls. Share one only behind a
// lock, or give each goroutine its own instance. Distinct samples are
// independent and may be decoded in parallel.
package sample
