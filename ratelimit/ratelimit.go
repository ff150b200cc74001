// Package ratelimit provides reader wrappers which throttle the rate at which bytes move through them, used to
// simulate slow object stores in tests.
package ratelimit

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"
)

// RateLimitedReader will use its limiter as a rate limit on the number of bytes read.
type RateLimitedReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

// RateLimitedReadCloser will use its limiter as a rate limit on the number of bytes read, closing the underlying
// reader as normal.
type RateLimitedReadCloser struct {
	RateLimitedReader
	c io.Closer
}

var (
	_ io.Reader     = (*RateLimitedReader)(nil)
	_ io.ReadCloser = (*RateLimitedReadCloser)(nil)
)

// NewRateLimitedReader creates a new RateLimitedReader which respects "limiter" in terms of the number of bytes
// read.
func NewRateLimitedReader(ctx context.Context, r io.Reader, limiter *rate.Limiter) *RateLimitedReader {
	return &RateLimitedReader{ctx: ctx, r: r, limiter: limiter}
}

// Read will read into p whilst respecting the rate limit.
func (r *RateLimitedReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n <= 0 {
		return n, err
	}

	return n, waitChunked(r.ctx, r.limiter, n)
}

// NewRateLimitedReadCloser creates a new RateLimitedReadCloser which respects "limiter" in terms of the number of
// bytes read.
func NewRateLimitedReadCloser(ctx context.Context, r io.ReadCloser, limiter *rate.Limiter) *RateLimitedReadCloser {
	return &RateLimitedReadCloser{
		RateLimitedReader: RateLimitedReader{ctx: ctx, r: r, limiter: limiter},
		c:                 r,
	}
}

// Close closes the underlying reader.
func (r *RateLimitedReadCloser) Close() error {
	return r.c.Close()
}

// waitChunked waits for n tokens in chunks of the limiter's burst size. This is because rate.Limiter will only allow
// at most its burst number of tokens to be drained at once, so if we want to wait for more then several calls to wait
// are required.
func waitChunked(ctx context.Context, limiter *rate.Limiter, n int) error {
	maxChunkSize := limiter.Burst()

	for n > 0 {
		waitFor := min(n, maxChunkSize)
		if lErr := limiter.WaitN(ctx, waitFor); lErr != nil {
			return fmt.Errorf("could not wait for limiter: %w", lErr)
		}

		n -= waitFor
	}

	return nil
}
