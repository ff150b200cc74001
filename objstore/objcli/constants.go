package objcli

const (
	// CodeNoSuchBucket is the S3 error code reported for operations against a bucket which does not exist.
	CodeNoSuchBucket = "NoSuchBucket"

	// CodeNoSuchKey is the S3 error code reported for reads/removals of a key or version which does not exist.
	CodeNoSuchKey = "NoSuchKey"

	// CodeBucketAlreadyExists is the S3 error code reported when creating a bucket whose name is taken.
	CodeBucketAlreadyExists = "BucketAlreadyExists"

	// CodeBucketNotEmpty is the S3 error code reported when removing a bucket which still holds live objects.
	CodeBucketNotEmpty = "BucketNotEmpty"

	// CodeInvalidArgument is the S3 error code reported for arguments the service can't accept.
	CodeInvalidArgument = "InvalidArgument"
)
