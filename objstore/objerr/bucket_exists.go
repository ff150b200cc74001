package objerr

import (
	"errors"
	"fmt"
)

// BucketExistsError is returned when creating a bucket whose name is already taken.
type BucketExistsError struct {
	Name string
}

// Error implements the 'error' interface.
func (e *BucketExistsError) Error() string {
	return fmt.Sprintf("bucket '%s' already exists", e.Name)
}

// IsBucketExistsError returns a boolean indicating whether the given error is a 'BucketExistsError'.
func IsBucketExistsError(err error) bool {
	var bucketExistsError *BucketExistsError
	return errors.As(err, &bucketExistsError)
}
