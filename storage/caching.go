package storage

import (
	"context"

	"github.com/hupe1980/hubgo/internal/cache"
)

// CachingStore wraps a Provider and caches values read through it.
//
// Writes and deletes made through the CachingStore invalidate the affected
// key. Writes made to the inner provider directly are not observed.
type CachingStore struct {
	inner Provider
	cache *cache.LRU
}

// NewCachingStore creates a new CachingStore holding at most capacity bytes.
// capacity defaults to 16MB if <= 0.
func NewCachingStore(inner Provider, capacity int64) *CachingStore {
	if capacity <= 0 {
		capacity = 16 << 20
	}
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRU(capacity),
	}
}

// Get returns the cached value or reads it from the inner provider.
func (s *CachingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := s.cache.Get(key); ok {
		return clone(v), nil
	}
	v, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, clone(v))
	return v, nil
}

// Set writes through to the inner provider and invalidates the key.
func (s *CachingStore) Set(ctx context.Context, key string, value []byte) error {
	s.cache.Remove(key)
	if err := s.inner.Set(ctx, key, value); err != nil {
		return err
	}
	// A concurrent Get may have re-cached the old value while the write was in flight.
	s.cache.Remove(key)
	return nil
}

// Delete removes key from the cache and, if supported, from the inner provider.
func (s *CachingStore) Delete(ctx context.Context, key string) error {
	s.cache.Remove(key)
	if d, ok := s.inner.(Deleter); ok {
		return d.Delete(ctx, key)
	}
	return nil
}

// List delegates to the inner provider when it supports listing.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	if l, ok := s.inner.(Lister); ok {
		return l.List(ctx, prefix)
	}
	return nil, ErrListUnsupported
}

// InvalidatePrefix drops every cached key with the given prefix. Use it
// after writing to the inner provider directly.
func (s *CachingStore) InvalidatePrefix(prefix string) {
	s.cache.RemovePrefix(prefix)
}

// Stats returns cache hit and miss counts.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
