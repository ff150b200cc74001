// Package objminio provides an implementation of 'objcli.Client' which defers to a real MinIO client; it's what the
// factory hands out when no interception scope is active.
package objminio

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/objtools/miniomock/objstore/objcli"
	"github.com/objtools/miniomock/objstore/objval"
)

// Client implements the 'objcli.Client' interface by deferring to the MinIO SDK; errors already carry the SDK's
// taxonomy so they pass through untouched.
type Client struct {
	serviceAPI serviceAPI
	logger     *slog.Logger
}

var _ objcli.Client = (*Client)(nil)

// ClientOptions encapsulates the options for creating a new MinIO backed Client.
type ClientOptions struct {
	// ServiceAPI is the minimal subset of functions that we use from the MinIO SDK, in general this should be the
	// client created using the 'minio.New' function exposed by the SDK.
	//
	// NOTE: Required
	ServiceAPI serviceAPI

	// Logger is the logger the client will use, defaults to the global logger.
	Logger *slog.Logger
}

// defaults fills any missing attributes with sane defaults.
func (c *ClientOptions) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// NewClient returns a new client which uses the given 'serviceAPI'.
func NewClient(options ClientOptions) *Client {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	client := Client{
		serviceAPI: options.ServiceAPI,
		logger:     options.Logger,
	}

	return &client
}

func (c *Client) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return c.serviceAPI.MakeBucket(ctx, bucketName, opts)
}

func (c *Client) ListBuckets(ctx context.Context) ([]minio.BucketInfo, error) {
	return c.serviceAPI.ListBuckets(ctx)
}

func (c *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return c.serviceAPI.BucketExists(ctx, bucketName)
}

func (c *Client) RemoveBucket(ctx context.Context, bucketName string) error {
	return c.serviceAPI.RemoveBucket(ctx, bucketName)
}

func (c *Client) ListObjects(
	ctx context.Context,
	bucketName string,
	opts minio.ListObjectsOptions,
) <-chan minio.ObjectInfo {
	return c.serviceAPI.ListObjects(ctx, bucketName, opts)
}

func (c *Client) GetBucketVersioning(
	ctx context.Context,
	bucketName string,
) (minio.BucketVersioningConfiguration, error) {
	return c.serviceAPI.GetBucketVersioning(ctx, bucketName)
}

func (c *Client) SetBucketVersioning(
	ctx context.Context,
	bucketName string,
	config minio.BucketVersioningConfiguration,
) error {
	return c.serviceAPI.SetBucketVersioning(ctx, bucketName, config)
}

// GetObject adapts the SDK's lazy 'minio.Object' handle into an 'objval.Object'; the stat forces the request so
// missing keys surface here rather than on first read.
func (c *Client) GetObject(
	ctx context.Context,
	bucketName, objectName string,
	opts minio.GetObjectOptions,
) (*objval.Object, error) {
	object, err := c.serviceAPI.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}

	stats, err := object.Stat()
	if err != nil {
		if err := object.Close(); err != nil {
			c.logger.Error("failed to close object handle after failed stat", "bucket", bucketName, "key", objectName)
		}

		return nil, err
	}

	return &objval.Object{ObjectAttrs: toObjectAttrs(stats), Body: object}, nil
}

func (c *Client) FGetObject(
	ctx context.Context,
	bucketName, objectName, filePath string,
	opts minio.GetObjectOptions,
) error {
	return c.serviceAPI.FGetObject(ctx, bucketName, objectName, filePath, opts)
}

func (c *Client) PutObject(
	ctx context.Context,
	bucketName, objectName string,
	reader io.Reader,
	objectSize int64,
	opts minio.PutObjectOptions,
) (minio.UploadInfo, error) {
	return c.serviceAPI.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (c *Client) FPutObject(
	ctx context.Context,
	bucketName, objectName, filePath string,
	opts minio.PutObjectOptions,
) (minio.UploadInfo, error) {
	return c.serviceAPI.FPutObject(ctx, bucketName, objectName, filePath, opts)
}

func (c *Client) StatObject(
	ctx context.Context,
	bucketName, objectName string,
	opts minio.StatObjectOptions,
) (minio.ObjectInfo, error) {
	return c.serviceAPI.StatObject(ctx, bucketName, objectName, opts)
}

func (c *Client) RemoveObject(
	ctx context.Context,
	bucketName, objectName string,
	opts minio.RemoveObjectOptions,
) error {
	return c.serviceAPI.RemoveObject(ctx, bucketName, objectName, opts)
}

func (c *Client) GetPresignedURL(
	ctx context.Context,
	method, bucketName, objectName string,
	expires time.Duration,
	reqParams url.Values,
) (*url.URL, error) {
	return c.serviceAPI.PresignHeader(ctx, method, bucketName, objectName, expires, reqParams, nil)
}

func (c *Client) PresignedGetObject(
	ctx context.Context,
	bucketName, objectName string,
	expires time.Duration,
	reqParams url.Values,
) (*url.URL, error) {
	return c.serviceAPI.PresignedGetObject(ctx, bucketName, objectName, expires, reqParams)
}

func (c *Client) PresignedPutObject(
	ctx context.Context,
	bucketName, objectName string,
	expires time.Duration,
) (*url.URL, error) {
	return c.serviceAPI.PresignedPutObject(ctx, bucketName, objectName, expires)
}

func (c *Client) EndpointURL() *url.URL {
	return c.serviceAPI.EndpointURL()
}
