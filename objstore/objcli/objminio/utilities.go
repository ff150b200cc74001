package objminio

import (
	"github.com/minio/minio-go/v7"

	"github.com/objtools/miniomock/objstore/objval"
)

// toObjectAttrs converts the SDK's stat result into the attribute type carried by 'objval.Object'.
func toObjectAttrs(info minio.ObjectInfo) objval.ObjectAttrs {
	return objval.ObjectAttrs{
		Key:            info.Key,
		ETag:           info.ETag,
		Size:           info.Size,
		ContentType:    info.ContentType,
		UserMetadata:   map[string]string(info.UserMetadata),
		VersionID:      info.VersionID,
		LastModified:   info.LastModified,
		IsDeleteMarker: info.IsDeleteMarker,
		IsLatest:       info.IsLatest,
	}
}
