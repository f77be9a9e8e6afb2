package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the algorithm used by CompressedStore.
type Compression uint8

const (
	// None stores values as-is (header only).
	None Compression = iota
	// Zstd uses Zstandard. Best ratio for JSON records.
	Zstd
	// LZ4 uses LZ4 block compression. Fastest.
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// maxLZ4Size bounds the decoded size announced by an LZ4 header.
const maxLZ4Size = 1 << 30

// ErrCorruptValue is returned when a stored value has no valid compression header.
var ErrCorruptValue = errors.New("corrupt compressed value")

// CompressedStore compresses values before handing them to the inner provider.
//
// Every value carries a one-byte algorithm tag, so values written with any
// algorithm can be read regardless of the store's current setting. All
// values under a CompressedStore must be written through one.
type CompressedStore struct {
	inner Provider
	algo  Compression
	enc   *zstd.Encoder
	dec   *zstd.Decoder
}

// NewCompressedStore wraps inner with value compression.
func NewCompressedStore(inner Provider, algo Compression) *CompressedStore {
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	dec, _ := zstd.NewReader(nil)
	return &CompressedStore{inner: inner, algo: algo, enc: enc, dec: dec}
}

// Get reads and decompresses the value stored under key.
func (s *CompressedStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	v, err := s.decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("key %q: %w", key, err)
	}
	return v, nil
}

// Set compresses value and writes it under key.
func (s *CompressedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.inner.Set(ctx, key, s.compress(value))
}

// Delete delegates to the inner provider when it supports deletion.
func (s *CompressedStore) Delete(ctx context.Context, key string) error {
	if d, ok := s.inner.(Deleter); ok {
		return d.Delete(ctx, key)
	}
	return nil
}

// List delegates to the inner provider when it supports listing.
func (s *CompressedStore) List(ctx context.Context, prefix string) ([]string, error) {
	if l, ok := s.inner.(Lister); ok {
		return l.List(ctx, prefix)
	}
	return nil, ErrListUnsupported
}

// Close releases the zstd encoder and decoder.
func (s *CompressedStore) Close() error {
	s.dec.Close()
	return s.enc.Close()
}

func (s *CompressedStore) compress(value []byte) []byte {
	switch s.algo {
	case Zstd:
		return s.enc.EncodeAll(value, []byte{byte(Zstd)})
	case LZ4:
		if len(value) == 0 {
			break
		}
		// Header: tag + uvarint original length.
		out := make([]byte, 1+binary.MaxVarintLen64+lz4.CompressBlockBound(len(value)))
		out[0] = byte(LZ4)
		h := 1 + binary.PutUvarint(out[1:], uint64(len(value)))
		n, err := lz4.CompressBlock(value, out[h:], nil)
		if err == nil && n > 0 {
			return out[:h+n]
		}
		// Incompressible input.
	}
	return append([]byte{byte(None)}, value...)
}

func (s *CompressedStore) decompress(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrCorruptValue
	}
	body := raw[1:]
	switch Compression(raw[0]) {
	case None:
		return clone(body), nil
	case Zstd:
		v, err := s.dec.DecodeAll(body, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptValue, err)
		}
		return v, nil
	case LZ4:
		size, h := binary.Uvarint(body)
		if h <= 0 || size == 0 || size > maxLZ4Size {
			return nil, ErrCorruptValue
		}
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(body[h:], out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptValue, err)
		}
		if uint64(n) != size {
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCorruptValue, size, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm tag %d", ErrCorruptValue, raw[0])
	}
}
