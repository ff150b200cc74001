package objerr

import (
	"errors"
	"fmt"
)

// BucketNotEmptyError is returned when removing a bucket which still holds one or more live objects.
type BucketNotEmptyError struct {
	Name string
}

// Error implements the 'error' interface.
func (e *BucketNotEmptyError) Error() string {
	return fmt.Sprintf("bucket '%s' is not empty", e.Name)
}

// IsBucketNotEmptyError returns a boolean indicating whether the given error is a 'BucketNotEmptyError'.
func IsBucketNotEmptyError(err error) bool {
	var bucketNotEmptyError *BucketNotEmptyError
	return errors.As(err, &bucketNotEmptyError)
}
