package objval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestObjectAttrsClone(t *testing.T) {
	attrs := ObjectAttrs{
		Key:          "key",
		ETag:         "etag",
		Size:         42,
		ContentType:  "application/octet-stream",
		UserMetadata: map[string]string{"owner": "tools"},
		VersionID:    "version",
		LastModified: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsLatest:     true,
	}

	clone := attrs.Clone()
	require.Equal(t, attrs, clone)

	clone.UserMetadata["owner"] = "somebody else"
	require.Equal(t, "tools", attrs.UserMetadata["owner"])
}

func TestObjectAttrsCloneNilMetadata(t *testing.T) {
	clone := ObjectAttrs{Key: "key"}.Clone()
	require.Nil(t, clone.UserMetadata)
}
