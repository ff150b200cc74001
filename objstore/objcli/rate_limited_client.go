package objcli

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"golang.org/x/time/rate"

	"github.com/objtools/miniomock/objstore/objval"
	"github.com/objtools/miniomock/ratelimit"
)

// RateLimitedClient implements the 'Client' interface mostly by deferring to the underlying Client, but the methods
// which move object data use the rate limiter to control the rate of transfer. Wrapping the in-memory double with
// one allows tests to simulate a slow store.
//
// The rate-limited methods are:
//
// - GetObject
// - PutObject
type RateLimitedClient struct {
	c  Client
	rl *rate.Limiter
}

var _ Client = (*RateLimitedClient)(nil)

// NewRateLimitedClient returns a RateLimitedClient.
func NewRateLimitedClient(c Client, rl *rate.Limiter) *RateLimitedClient {
	return &RateLimitedClient{c: c, rl: rl}
}

func (r *RateLimitedClient) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return r.c.MakeBucket(ctx, bucketName, opts)
}

func (r *RateLimitedClient) ListBuckets(ctx context.Context) ([]minio.BucketInfo, error) {
	return r.c.ListBuckets(ctx)
}

func (r *RateLimitedClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return r.c.BucketExists(ctx, bucketName)
}

func (r *RateLimitedClient) RemoveBucket(ctx context.Context, bucketName string) error {
	return r.c.RemoveBucket(ctx, bucketName)
}

func (r *RateLimitedClient) ListObjects(
	ctx context.Context,
	bucketName string,
	opts minio.ListObjectsOptions,
) <-chan minio.ObjectInfo {
	return r.c.ListObjects(ctx, bucketName, opts)
}

func (r *RateLimitedClient) GetBucketVersioning(
	ctx context.Context,
	bucketName string,
) (minio.BucketVersioningConfiguration, error) {
	return r.c.GetBucketVersioning(ctx, bucketName)
}

func (r *RateLimitedClient) SetBucketVersioning(
	ctx context.Context,
	bucketName string,
	config minio.BucketVersioningConfiguration,
) error {
	return r.c.SetBucketVersioning(ctx, bucketName, config)
}

func (r *RateLimitedClient) GetObject(
	ctx context.Context,
	bucketName, objectName string,
	opts minio.GetObjectOptions,
) (*objval.Object, error) {
	obj, err := r.c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}

	obj.Body = ratelimit.NewRateLimitedReadCloser(ctx, obj.Body, r.rl)

	return obj, nil
}

func (r *RateLimitedClient) FGetObject(
	ctx context.Context,
	bucketName, objectName, filePath string,
	opts minio.GetObjectOptions,
) error {
	return r.c.FGetObject(ctx, bucketName, objectName, filePath, opts)
}

func (r *RateLimitedClient) PutObject(
	ctx context.Context,
	bucketName, objectName string,
	reader io.Reader,
	objectSize int64,
	opts minio.PutObjectOptions,
) (minio.UploadInfo, error) {
	return r.c.PutObject(ctx, bucketName, objectName, ratelimit.NewRateLimitedReader(ctx, reader, r.rl), objectSize,
		opts)
}

func (r *RateLimitedClient) FPutObject(
	ctx context.Context,
	bucketName, objectName, filePath string,
	opts minio.PutObjectOptions,
) (minio.UploadInfo, error) {
	return r.c.FPutObject(ctx, bucketName, objectName, filePath, opts)
}

func (r *RateLimitedClient) StatObject(
	ctx context.Context,
	bucketName, objectName string,
	opts minio.StatObjectOptions,
) (minio.ObjectInfo, error) {
	return r.c.StatObject(ctx, bucketName, objectName, opts)
}

func (r *RateLimitedClient) RemoveObject(
	ctx context.Context,
	bucketName, objectName string,
	opts minio.RemoveObjectOptions,
) error {
	return r.c.RemoveObject(ctx, bucketName, objectName, opts)
}

func (r *RateLimitedClient) GetPresignedURL(
	ctx context.Context,
	method, bucketName, objectName string,
	expires time.Duration,
	reqParams url.Values,
) (*url.URL, error) {
	return r.c.GetPresignedURL(ctx, method, bucketName, objectName, expires, reqParams)
}

func (r *RateLimitedClient) PresignedGetObject(
	ctx context.Context,
	bucketName, objectName string,
	expires time.Duration,
	reqParams url.Values,
) (*url.URL, error) {
	return r.c.PresignedGetObject(ctx, bucketName, objectName, expires, reqParams)
}

func (r *RateLimitedClient) PresignedPutObject(
	ctx context.Context,
	bucketName, objectName string,
	expires time.Duration,
) (*url.URL, error) {
	return r.c.PresignedPutObject(ctx, bucketName, objectName, expires)
}

func (r *RateLimitedClient) EndpointURL() *url.URL {
	return r.c.EndpointURL()
}
