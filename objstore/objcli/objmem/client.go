package objmem

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/s3utils"

	"github.com/objtools/miniomock/objstore/objcli"
	"github.com/objtools/miniomock/objstore/objerr"
	"github.com/objtools/miniomock/objstore/objval"
)

const (
	// DefaultRegion is the location recorded for buckets created without an explicit one.
	DefaultRegion = "us-east-1"

	// DefaultContentType is the media type recorded for objects uploaded without an explicit one.
	DefaultContentType = "application/octet-stream"

	// maxPresignedExpiry is the longest lifetime a presigned URL may be given, matching the real service.
	maxPresignedExpiry = 7 * 24 * time.Hour
)

// Client implements the 'objcli.Client' interface against an in-memory 'Backend' instead of a remote service. It's
// a pure translation layer, all state lives in the backend which may be shared by any number of clients.
type Client struct {
	backend     *Backend
	endpointURL url.URL
	region      string
	logger      *slog.Logger
}

var _ objcli.Client = (*Client)(nil)

// ClientOptions encapsulates the options for creating a new in-memory Client.
type ClientOptions struct {
	// Backend is the store this client reads/writes.
	//
	// NOTE: Required
	Backend *Backend

	// Endpoint is the host[:port] the client claims to be connected to; it only parameterizes generated URLs.
	Endpoint string

	// Secure toggles https in generated URLs.
	Secure bool

	// Region is the location used for buckets created without an explicit one.
	Region string

	// Logger is the logger the client will use, defaults to the global logger.
	Logger *slog.Logger
}

// defaults fills any missing attributes with sane defaults.
func (c *ClientOptions) defaults() {
	if c.Endpoint == "" {
		c.Endpoint = "127.0.0.1:9000"
	}

	if c.Region == "" {
		c.Region = DefaultRegion
	}

	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// NewClient returns a new client backed by the given backend, failing if the given endpoint isn't a valid
// host[:port] the way the MinIO SDK would.
func NewClient(options ClientOptions) (*Client, error) {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	endpointURL, err := endpointURL(options.Endpoint, options.Secure)
	if err != nil {
		return nil, err
	}

	client := Client{
		backend:     options.Backend,
		endpointURL: *endpointURL,
		region:      options.Region,
		logger:      options.Logger,
	}

	return &client, nil
}

func (c *Client) MakeBucket(_ context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	if err := s3utils.CheckValidBucketNameStrict(bucketName); err != nil {
		return err // Purposefully not wrapped
	}

	region := opts.Region
	if region == "" {
		region = c.region
	}

	return handleError(bucketName, "", c.backend.MakeBucket(bucketName, region))
}

func (c *Client) ListBuckets(_ context.Context) ([]minio.BucketInfo, error) {
	attrs := c.backend.ListBuckets()

	buckets := make([]minio.BucketInfo, 0, len(attrs))
	for _, bucket := range attrs {
		buckets = append(buckets, minio.BucketInfo{Name: bucket.Name, CreationDate: bucket.CreationDate})
	}

	return buckets, nil
}

func (c *Client) BucketExists(_ context.Context, bucketName string) (bool, error) {
	if err := s3utils.CheckValidBucketName(bucketName); err != nil {
		return false, err
	}

	return c.backend.BucketExists(bucketName), nil
}

func (c *Client) RemoveBucket(_ context.Context, bucketName string) error {
	if err := s3utils.CheckValidBucketName(bucketName); err != nil {
		return err
	}

	return handleError(bucketName, "", c.backend.RemoveBucket(bucketName))
}

func (c *Client) ListObjects(
	ctx context.Context,
	bucketName string,
	opts minio.ListObjectsOptions,
) <-chan minio.ObjectInfo {
	objects := make(chan minio.ObjectInfo, 1)

	go func() {
		defer close(objects)

		send := func(object minio.ObjectInfo) bool {
			select {
			case objects <- object:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if err := s3utils.CheckValidBucketName(bucketName); err != nil {
			send(minio.ObjectInfo{Err: err})
			return
		}

		attrs, err := c.backend.ListObjects(bucketName, opts.Prefix, opts.StartAfter, opts.Recursive,
			opts.WithVersions)
		if err != nil {
			send(minio.ObjectInfo{Err: handleError(bucketName, "", err)})
			return
		}

		for _, object := range attrs {
			if !send(toObjectInfo(object)) {
				return
			}
		}
	}()

	return objects
}

func (c *Client) GetBucketVersioning(
	_ context.Context,
	bucketName string,
) (minio.BucketVersioningConfiguration, error) {
	if err := s3utils.CheckValidBucketName(bucketName); err != nil {
		return minio.BucketVersioningConfiguration{}, err
	}

	status, err := c.backend.GetBucketVersioning(bucketName)
	if err != nil {
		return minio.BucketVersioningConfiguration{}, handleError(bucketName, "", err)
	}

	return minio.BucketVersioningConfiguration{Status: string(status)}, nil
}

func (c *Client) SetBucketVersioning(
	_ context.Context,
	bucketName string,
	config minio.BucketVersioningConfiguration,
) error {
	if err := s3utils.CheckValidBucketName(bucketName); err != nil {
		return err
	}

	return handleError(bucketName, "", c.backend.SetBucketVersioning(bucketName,
		objval.VersioningStatus(config.Status)))
}

func (c *Client) GetObject(
	_ context.Context,
	bucketName, objectName string,
	opts minio.GetObjectOptions,
) (*objval.Object, error) {
	if err := validObjectArgs(bucketName, objectName); err != nil {
		return nil, err
	}

	record, err := c.backend.GetObject(bucketName, objectName, opts.VersionID)
	if err != nil {
		return nil, handleError(bucketName, objectName, err)
	}

	object := objval.Object{
		ObjectAttrs: record.ObjectAttrs,
		Body:        io.NopCloser(bytes.NewReader(record.Body)),
	}

	return &object, nil
}

func (c *Client) FGetObject(
	ctx context.Context,
	bucketName, objectName, filePath string,
	opts minio.GetObjectOptions,
) error {
	if stats, err := os.Stat(filePath); err == nil && stats.IsDir() {
		return errInvalidArgument("fileName is a directory.")
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o700); err != nil {
		return err
	}

	object, err := c.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return err
	}
	defer object.Body.Close()

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, object.Body)

	return err
}

func (c *Client) PutObject(
	_ context.Context,
	bucketName, objectName string,
	reader io.Reader,
	objectSize int64,
	opts minio.PutObjectOptions,
) (minio.UploadInfo, error) {
	if err := validObjectArgs(bucketName, objectName); err != nil {
		return minio.UploadInfo{}, err
	}

	body, err := readBody(reader, objectSize)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	attrs, err := c.backend.PutObject(bucketName, objectName, body, contentType, opts.UserMetadata)
	if err != nil {
		return minio.UploadInfo{}, handleError(bucketName, objectName, err)
	}

	info := minio.UploadInfo{
		Bucket:    bucketName,
		Key:       objectName,
		ETag:      attrs.ETag,
		Size:      attrs.Size,
		VersionID: attrs.VersionID,
	}

	return info, nil
}

func (c *Client) FPutObject(
	ctx context.Context,
	bucketName, objectName, filePath string,
	opts minio.PutObjectOptions,
) (minio.UploadInfo, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	defer file.Close()

	stats, err := file.Stat()
	if err != nil {
		return minio.UploadInfo{}, err
	}

	// The SDK infers a media type from the file extension, the generic upload path defaults it instead
	if opts.ContentType == "" {
		opts.ContentType = mime.TypeByExtension(filepath.Ext(filePath))
	}

	return c.PutObject(ctx, bucketName, objectName, file, stats.Size(), opts)
}

func (c *Client) StatObject(
	_ context.Context,
	bucketName, objectName string,
	opts minio.StatObjectOptions,
) (minio.ObjectInfo, error) {
	if err := validObjectArgs(bucketName, objectName); err != nil {
		return minio.ObjectInfo{}, err
	}

	attrs, err := c.backend.StatObject(bucketName, objectName, opts.VersionID)
	if err != nil {
		return minio.ObjectInfo{}, handleError(bucketName, objectName, err)
	}

	return toObjectInfo(attrs), nil
}

func (c *Client) RemoveObject(
	_ context.Context,
	bucketName, objectName string,
	opts minio.RemoveObjectOptions,
) error {
	if err := validObjectArgs(bucketName, objectName); err != nil {
		return err
	}

	return handleError(bucketName, objectName, c.backend.RemoveObject(bucketName, objectName, opts.VersionID))
}

func (c *Client) GetPresignedURL(
	_ context.Context,
	method, bucketName, objectName string,
	expires time.Duration,
	reqParams url.Values,
) (*url.URL, error) {
	if method == "" {
		return nil, errInvalidArgument("method cannot be empty.")
	}

	if err := validObjectArgs(bucketName, objectName); err != nil {
		return nil, err
	}

	if err := validExpiry(expires); err != nil {
		return nil, err
	}

	if !c.backend.BucketExists(bucketName) {
		return nil, handleError(bucketName, objectName, &objerr.NotFoundError{Type: "bucket", Name: bucketName})
	}

	query := make(url.Values)
	for key, values := range reqParams {
		query[key] = values
	}

	query.Set("X-Amz-Expires", strconv.FormatInt(int64(expires/time.Second), 10))
	query.Set("X-Amz-Date", time.Now().UTC().Format("20060102T150405Z"))

	signed := c.endpointURL
	signed.Path = "/" + bucketName + "/" + objectName
	signed.RawQuery = query.Encode()

	c.logger.Debug("generated presigned url", "method", method, "bucket", bucketName, "key", objectName,
		"expires", expires)

	return &signed, nil
}

func (c *Client) PresignedGetObject(
	ctx context.Context,
	bucketName, objectName string,
	expires time.Duration,
	reqParams url.Values,
) (*url.URL, error) {
	return c.GetPresignedURL(ctx, http.MethodGet, bucketName, objectName, expires, reqParams)
}

func (c *Client) PresignedPutObject(
	ctx context.Context,
	bucketName, objectName string,
	expires time.Duration,
) (*url.URL, error) {
	return c.GetPresignedURL(ctx, http.MethodPut, bucketName, objectName, expires, nil)
}

func (c *Client) EndpointURL() *url.URL {
	endpointURL := c.endpointURL
	return &endpointURL
}

// Backend returns the store this client reads/writes, the scope fixture exposes it so tests can seed/inspect state
// directly.
func (c *Client) Backend() *Backend {
	return c.backend
}

// validObjectArgs runs the same client-side name validation the MinIO SDK runs before issuing a request.
func validObjectArgs(bucketName, objectName string) error {
	if err := s3utils.CheckValidBucketName(bucketName); err != nil {
		return err
	}

	return s3utils.CheckValidObjectName(objectName)
}

// validExpiry bounds presigned URL lifetimes the way the MinIO SDK does, messages included.
func validExpiry(expires time.Duration) error {
	if expires > maxPresignedExpiry {
		return errInvalidArgument("Expires cannot be greater than 7 days.")
	}

	if expires < time.Second {
		return errInvalidArgument("Expires cannot be lesser than 1 second.")
	}

	return nil
}

// readBody reads an upload body; a size of -1 means read to EOF, otherwise exactly size bytes are expected.
func readBody(reader io.Reader, size int64) ([]byte, error) {
	if size < 0 {
		return io.ReadAll(reader)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(reader, body); err != nil {
		return nil, err
	}

	return body, nil
}
