// Package matchers provides 'Matcher' implementations for use in 'testify/mock' expectations.
package matchers

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Context matches any implementation of 'context.Context'.
var Context = mock.MatchedBy(func(_ context.Context) bool { return true })
