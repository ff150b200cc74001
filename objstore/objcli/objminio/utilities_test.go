package objminio

import (
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"

	"github.com/objtools/miniomock/objstore/objval"
)

func TestToObjectAttrs(t *testing.T) {
	info := minio.ObjectInfo{
		Key:            "key",
		ETag:           "etag",
		Size:           42,
		ContentType:    "text/plain",
		UserMetadata:   minio.StringMap{"owner": "tools"},
		VersionID:      "version",
		LastModified:   time.Date(2024, time.August, 14, 12, 0, 0, 0, time.UTC),
		IsDeleteMarker: true,
		IsLatest:       true,
	}

	expected := objval.ObjectAttrs{
		Key:            "key",
		ETag:           "etag",
		Size:           42,
		ContentType:    "text/plain",
		UserMetadata:   map[string]string{"owner": "tools"},
		VersionID:      "version",
		LastModified:   time.Date(2024, time.August, 14, 12, 0, 0, 0, time.UTC),
		IsDeleteMarker: true,
		IsLatest:       true,
	}

	require.Equal(t, expected, toObjectAttrs(info))
}
