package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a Store and caps its read/write throughput with a
// shared token bucket. Use it to keep background snapshot traffic from
// starving the host application's own network or disk budget.
type ThrottledStore struct {
	inner   Store
	limiter *rate.Limiter
}

// NewThrottledStore creates a ThrottledStore limited to bytesPerSec.
// If bytesPerSec <= 0, the store is unthrottled.
func NewThrottledStore(inner Store, bytesPerSec int64) *ThrottledStore {
	var limiter *rate.Limiter
	if bytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
	}
	return &ThrottledStore{
		inner:   inner,
		limiter: limiter,
	}
}

// waitN blocks until n bytes of budget are available.
// Requests larger than the bucket are split into burst-sized waits.
func (s *ThrottledStore) waitN(ctx context.Context, n int) error {
	if s.limiter == nil || n <= 0 {
		return nil
	}
	burst := s.limiter.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Open opens a blob for reading. The returned reader charges the budget
// as it is consumed.
func (s *ThrottledStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledReader{ctx: ctx, store: s, inner: r}, nil
}

// Put writes a blob after acquiring budget for its full size.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.waitN(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Delete removes a blob. Deletes are not throttled.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List returns all blob names with the given prefix. Listing is not
// throttled.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

type throttledReader struct {
	ctx   context.Context
	store *ThrottledStore
	inner io.ReadCloser
}

func (r *throttledReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 {
		if werr := r.store.waitN(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (r *throttledReader) Close() error {
	return r.inner.Close()
}
