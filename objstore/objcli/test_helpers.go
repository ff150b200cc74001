package objcli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
)

// TestCreateBucket creates the given bucket.
func TestCreateBucket(t *testing.T, client Client, bucket string) {
	require.NoError(t, client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}))
}

// TestUploadRAW uploads the given raw data.
func TestUploadRAW(t *testing.T, client Client, bucket, key string, body []byte) minio.UploadInfo {
	info, err := client.PutObject(context.Background(), bucket, key, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{})
	require.NoError(t, err)

	return info
}

// TestDownloadRAW downloads the latest version of the object as raw data.
func TestDownloadRAW(t *testing.T, client Client, bucket, key string) []byte {
	object, err := client.GetObject(context.Background(), bucket, key, minio.GetObjectOptions{})
	require.NoError(t, err)

	defer object.Body.Close()

	body, err := io.ReadAll(object.Body)
	require.NoError(t, err)

	return body
}

// TestRequireKeyExists asserts that the given key exists.
func TestRequireKeyExists(t *testing.T, client Client, bucket, key string) {
	_, err := client.StatObject(context.Background(), bucket, key, minio.StatObjectOptions{})
	require.NoError(t, err)
}

// TestRequireKeyNotFound asserts that the given key does not exist.
func TestRequireKeyNotFound(t *testing.T, client Client, bucket, key string) {
	_, err := client.StatObject(context.Background(), bucket, key, minio.StatObjectOptions{})
	TestRequireErrorCode(t, err, CodeNoSuchKey)
}

// TestRequireErrorCode asserts that the given error carries the given S3 error code.
func TestRequireErrorCode(t *testing.T, err error, code string) {
	require.Error(t, err)
	require.Equal(t, code, minio.ToErrorResponse(err).Code)
}

// TestListObjects collects the objects which match the given listing options, failing the test if the stream
// delivers an error.
func TestListObjects(t *testing.T, client Client, bucket string, opts minio.ListObjectsOptions) []minio.ObjectInfo {
	all := make([]minio.ObjectInfo, 0)

	for object := range client.ListObjects(context.Background(), bucket, opts) {
		require.NoError(t, object.Err)

		all = append(all, object)
	}

	return all
}

// TestListKeys collects the keys which match the given listing options.
func TestListKeys(t *testing.T, client Client, bucket string, opts minio.ListObjectsOptions) []string {
	objects := TestListObjects(t, client, bucket, opts)

	keys := make([]string, 0, len(objects))
	for _, object := range objects {
		keys = append(keys, object.Key)
	}

	return keys
}
