package objval

import "time"

// BucketAttrs represents the attributes attached to a bucket.
type BucketAttrs struct {
	// Name uniquely identifies the bucket.
	Name string

	// Region is the location supplied when the bucket was created, empty when the caller didn't provide one.
	Region string

	// CreationDate is the UTC time at which the bucket was created.
	CreationDate time.Time
}

// VersioningStatus indicates how writes/removals interact with a buckets version histories.
type VersioningStatus string

const (
	// VersioningDisabled means each key holds at most one live record; writes replace, removals erase. This is the
	// zero value, matching a bucket which has never had versioning configured.
	VersioningDisabled VersioningStatus = ""

	// VersioningEnabled means writes append new versions and unqualified removals append delete markers.
	VersioningEnabled VersioningStatus = "Enabled"

	// VersioningSuspended retains existing version histories; writes/removals continue to append.
	VersioningSuspended VersioningStatus = "Suspended"
)

// Valid returns a boolean indicating whether the status is one of the three recognized states.
func (s VersioningStatus) Valid() bool {
	return s == VersioningDisabled || s == VersioningEnabled || s == VersioningSuspended
}

// Versioned returns a boolean indicating whether writes should append to version histories rather than replace
// them.
func (s VersioningStatus) Versioned() bool {
	return s == VersioningEnabled || s == VersioningSuspended
}
