package storage

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedStore throttles the bytes moved through a Provider.
//
// Writes wait before the value is sent; reads are charged after the value
// arrives, since the size is unknown up front.
type RateLimitedStore struct {
	inner   Provider
	limiter *rate.Limiter
}

// NewRateLimitedStore limits inner to bytesPerSec. A non-positive limit disables throttling.
func NewRateLimitedStore(inner Provider, bytesPerSec int) *RateLimitedStore {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if bytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return &RateLimitedStore{inner: inner, limiter: limiter}
}

// Get reads from the inner provider and waits for the read bytes.
func (s *RateLimitedStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx, len(v)); err != nil {
		return nil, err
	}
	return v, nil
}

// Set waits for len(value) bytes and then writes to the inner provider.
func (s *RateLimitedStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.wait(ctx, len(value)); err != nil {
		return err
	}
	return s.inner.Set(ctx, key, value)
}

// Delete delegates to the inner provider when it supports deletion.
func (s *RateLimitedStore) Delete(ctx context.Context, key string) error {
	if d, ok := s.inner.(Deleter); ok {
		return d.Delete(ctx, key)
	}
	return nil
}

// List delegates to the inner provider when it supports listing.
func (s *RateLimitedStore) List(ctx context.Context, prefix string) ([]string, error) {
	if l, ok := s.inner.(Lister); ok {
		return l.List(ctx, prefix)
	}
	return nil, ErrListUnsupported
}

// wait consumes n tokens in burst-sized steps.
func (s *RateLimitedStore) wait(ctx context.Context, n int) error {
	if s.limiter.Limit() == rate.Inf {
		return nil
	}
	burst := s.limiter.Burst()
	for n > 0 {
		step := min(n, burst)
		if err := s.limiter.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
