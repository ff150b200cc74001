package objval

import (
	"io"
	"time"

	"golang.org/x/exp/maps"
)

// ObjectAttrs represents the attributes attached to a single stored object version.
type ObjectAttrs struct {
	// Key is the object name, unique within a bucket.
	Key string

	// ETag is the hex encoded MD5 sum of the objects body, mirroring what the storage service would return for a
	// simple upload. Empty for delete markers.
	ETag string

	// Size is the length of the objects body in bytes, zero for delete markers.
	Size int64

	// ContentType is the media type supplied at upload, empty when the caller didn't provide one.
	ContentType string

	// UserMetadata is the user defined metadata supplied at upload.
	UserMetadata map[string]string

	// VersionID uniquely identifies this version within its bucket. Empty for records written whilst versioning was
	// disabled.
	VersionID string

	// LastModified is the UTC time at which this version was written.
	//
	// NOTE: Recency is determined by position in the version history, not by this timestamp; writes within the same
	// instant remain correctly ordered.
	LastModified time.Time

	// IsDeleteMarker indicates this record is a delete marker appended by an unqualified remove on a versioned
	// bucket; it has no body.
	IsDeleteMarker bool

	// IsLatest indicates this record is the current version of its key.
	IsLatest bool
}

// Clone returns a deep copy of the attributes which may be modified without affecting the original.
func (o ObjectAttrs) Clone() ObjectAttrs {
	clone := o
	clone.UserMetadata = maps.Clone(o.UserMetadata)

	return clone
}

// Object represents an object fetched from storage, simply the attributes and it's body.
type Object struct {
	ObjectAttrs

	// Body contains the object data; it should be read once, and closed to avoid resource leaks.
	Body io.ReadCloser
}

// ObjectVersion is a single record in a keys version history, the attributes plus the stored body.
type ObjectVersion struct {
	ObjectAttrs

	// Body is the stored object data; reads are always served from a copy.
	Body []byte
}
