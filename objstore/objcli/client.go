// Package objcli exposes a unified 'Client' interface mirroring the surface of the MinIO Go SDK so that the
// in-memory double and a real client may be used interchangeably by code under test.
package objcli

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/objtools/miniomock/objstore/objval"
)

//go:generate mockery --name Client --case underscore --inpackage

// Client is a unified interface for accessing/managing objects stored in a MinIO compatible object store.
//
// Option/result types are those of the MinIO SDK so call sites don't change when swapping implementations. The
// exceptions are 'GetObject', which returns an 'objval.Object' because a 'minio.Object' can't be constructed
// outside the SDK, and 'GetPresignedURL' which generalizes the per-method presign functions.
type Client interface {
	// MakeBucket creates a bucket with the given name, failing if the name is already taken.
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error

	// ListBuckets returns the buckets which currently exist, in creation order.
	ListBuckets(ctx context.Context) ([]minio.BucketInfo, error)

	// BucketExists returns a boolean indicating whether the named bucket exists; absence is not an error.
	BucketExists(ctx context.Context, bucketName string) (bool, error)

	// RemoveBucket removes the named bucket, failing if it still holds any live objects.
	RemoveBucket(ctx context.Context, bucketName string) error

	// ListObjects streams the objects in the given bucket which match the given filtering parameters.
	//
	// NOTE: As with the MinIO SDK, failures are delivered in-band as an item with a non-nil 'Err' attribute.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo

	// GetBucketVersioning returns the versioning configuration of the named bucket.
	GetBucketVersioning(ctx context.Context, bucketName string) (minio.BucketVersioningConfiguration, error)

	// SetBucketVersioning updates the versioning configuration of the named bucket.
	SetBucketVersioning(ctx context.Context, bucketName string, config minio.BucketVersioningConfiguration) error

	// GetObject retrieves an object from the store, by default the latest version.
	//
	// NOTE: The returned objects body must be closed to avoid resource leaks.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*objval.Object, error)

	// FGetObject downloads an object and writes it to the given local file path, creating parent directories as
	// required.
	FGetObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.GetObjectOptions) error

	// PutObject uploads the data read from the given reader. A size of -1 means read to EOF.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)

	// FPutObject uploads the contents of the file at the given local path.
	FPutObject(ctx context.Context, bucketName, objectName, filePath string,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)

	// StatObject returns metadata about an object, by default the latest version.
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo,
		error)

	// RemoveObject removes an object. On a versioned bucket an unqualified remove appends a delete marker, a remove
	// qualified with a version id permanently erases that version.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error

	// GetPresignedURL generates a presigned URL authorizing the given HTTP method against the given object for the
	// given length of time. The expiry must be between one second and seven days.
	GetPresignedURL(ctx context.Context, method, bucketName, objectName string, expires time.Duration,
		reqParams url.Values) (*url.URL, error)

	// PresignedGetObject is shorthand for 'GetPresignedURL' with the GET method.
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration,
		reqParams url.Values) (*url.URL, error)

	// PresignedPutObject is shorthand for 'GetPresignedURL' with the PUT method.
	PresignedPutObject(ctx context.Context, bucketName, objectName string, expires time.Duration) (*url.URL, error)

	// EndpointURL returns the endpoint this client was constructed against.
	EndpointURL() *url.URL
}
