package objerr

import (
	"errors"
	"fmt"
)

// InvalidArgumentError is returned when an operation is given an argument it can't accept, for example an unknown
// versioning status or an out of range presign expiry.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

// Error implements the 'error' interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument '%s': %s", e.Argument, e.Reason)
}

// IsInvalidArgumentError returns a boolean indicating whether the given error is an 'InvalidArgumentError'.
func IsInvalidArgumentError(err error) bool {
	var invalidArgumentError *InvalidArgumentError
	return errors.As(err, &invalidArgumentError)
}
