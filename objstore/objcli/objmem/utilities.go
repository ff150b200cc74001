package objmem

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/s3utils"

	"github.com/objtools/miniomock/objstore/objcli"
	"github.com/objtools/miniomock/objstore/objerr"
	"github.com/objtools/miniomock/objstore/objval"
)

// handleError converts the backends taxonomy into the bare 'minio.ErrorResponse' values callers of the MinIO SDK
// expect; 'minio.ToErrorResponse' uses a plain type switch so the values must not be wrapped. Errors which aren't
// part of the taxonomy pass through untouched.
func handleError(bucket, key string, err error) error {
	if err == nil {
		return nil
	}

	var (
		notFound        *objerr.NotFoundError
		bucketExists    *objerr.BucketExistsError
		bucketNotEmpty  *objerr.BucketNotEmptyError
		invalidArgument *objerr.InvalidArgumentError
	)

	switch {
	case errors.As(err, &notFound):
		if notFound.Type == "bucket" {
			return minio.ErrorResponse{
				Code:       objcli.CodeNoSuchBucket,
				Message:    "The specified bucket does not exist",
				StatusCode: http.StatusNotFound,
				BucketName: bucket,
				Key:        key,
			}
		}

		return minio.ErrorResponse{
			Code:       objcli.CodeNoSuchKey,
			Message:    "The specified key does not exist.",
			StatusCode: http.StatusNotFound,
			BucketName: bucket,
			Key:        key,
		}
	case errors.As(err, &bucketExists):
		return minio.ErrorResponse{
			Code:       objcli.CodeBucketAlreadyExists,
			Message:    "The requested bucket name is not available.",
			StatusCode: http.StatusConflict,
			BucketName: bucket,
		}
	case errors.As(err, &bucketNotEmpty):
		return minio.ErrorResponse{
			Code:       objcli.CodeBucketNotEmpty,
			Message:    "The bucket you tried to delete is not empty",
			StatusCode: http.StatusConflict,
			BucketName: bucket,
		}
	case errors.As(err, &invalidArgument):
		return minio.ErrorResponse{
			Code:       objcli.CodeInvalidArgument,
			Message:    invalidArgument.Error(),
			StatusCode: http.StatusBadRequest,
			BucketName: bucket,
			Key:        key,
		}
	}

	return err
}

// errInvalidArgument mirrors the error the MinIO SDK returns for arguments it rejects client-side, shape and
// message included.
func errInvalidArgument(message string) error {
	return minio.ErrorResponse{
		StatusCode: http.StatusNotAcceptable,
		Code:       objcli.CodeInvalidArgument,
		Message:    message,
		RequestID:  "minio",
	}
}

// endpointURL builds the URL form of a host[:port] endpoint, applying the same validation the MinIO SDK applies at
// construction, messages included.
func endpointURL(endpoint string, secure bool) (*url.URL, error) {
	scheme := "http"
	if secure {
		scheme = "https"
	}

	parsed, err := url.Parse(scheme + "://" + endpoint)
	if err != nil {
		return nil, err
	}

	if parsed.Path != "" && parsed.Path != "/" {
		return nil, errInvalidArgument("Endpoint url cannot have fully qualified paths.")
	}

	host := parsed.Hostname()
	if host == "" || !(s3utils.IsValidIP(host) || s3utils.IsValidDomain(host)) {
		return nil, errInvalidArgument(fmt.Sprintf("Endpoint: %s does not follow ip address or domain name standards.",
			endpoint))
	}

	return parsed, nil
}

// toObjectInfo converts stored attributes into the value type the MinIO SDK reports from listings/stat.
func toObjectInfo(attrs objval.ObjectAttrs) minio.ObjectInfo {
	return minio.ObjectInfo{
		Key:            attrs.Key,
		ETag:           attrs.ETag,
		Size:           attrs.Size,
		ContentType:    attrs.ContentType,
		UserMetadata:   minio.StringMap(attrs.UserMetadata),
		VersionID:      attrs.VersionID,
		LastModified:   attrs.LastModified,
		IsDeleteMarker: attrs.IsDeleteMarker,
		IsLatest:       attrs.IsLatest,
	}
}
