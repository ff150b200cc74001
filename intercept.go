package miniomock

import (
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"

	"github.com/objtools/miniomock/objstore/objcli"
	"github.com/objtools/miniomock/objstore/objcli/objmem"
)

// ErrAlreadyActive is returned when activating interception whilst another scope holds it; scopes don't nest.
var ErrAlreadyActive = errors.New("an interception scope is already active")

var (
	lock   sync.Mutex
	active *Scope
)

// Scope represents one activation of the interception seam. Each scope owns a fresh backend, so state never leaks
// between scopes.
type Scope struct {
	backend *objmem.Backend
	logger  *slog.Logger

	mu       sync.Mutex
	released bool
}

// ScopeOptions encapsulates the options available when activating interception.
type ScopeOptions struct {
	// Logger is the logger the scope and its clients will use, defaults to the global logger.
	Logger *slog.Logger
}

// defaults fills any missing attributes with sane defaults.
func (s *ScopeOptions) defaults() {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
}

// Activate switches 'New' over to handing out in-memory clients until the returned scope is released. Only one
// scope may be active at a time.
//
// Callers must guarantee 'Release' runs on every teardown path; inside tests prefer 'Intercept' which arranges
// that automatically.
func Activate(options ScopeOptions) (*Scope, error) {
	options.defaults()

	lock.Lock()
	defer lock.Unlock()

	if active != nil {
		return nil, ErrAlreadyActive
	}

	scope := Scope{
		backend: objmem.NewBackend(objmem.BackendOptions{Logger: options.Logger}),
		logger:  options.Logger,
	}

	active = &scope

	options.Logger.Debug("activated object storage interception")

	return &scope, nil
}

// Intercept activates interception for the duration of the given test, releasing it during cleanup.
func Intercept(t *testing.T) *Scope {
	scope, err := Activate(ScopeOptions{})
	require.NoError(t, err)

	t.Cleanup(scope.Release)

	return scope
}

// Release deactivates interception, subsequent 'New' calls construct real clients again. Releasing an already
// released scope is a no-op, making it safe on every teardown path.
func (s *Scope) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return
	}

	s.released = true

	lock.Lock()
	defer lock.Unlock()

	if active == s {
		active = nil
	}

	s.logger.Debug("released object storage interception")
}

// Backend returns the store shared by every client this scope hands out, allowing tests to seed/inspect state
// directly.
func (s *Scope) Backend() *objmem.Backend {
	return s.backend
}

// Client builds an in-memory client against the scope's backend without going through the global seam, for code
// under test which accepts an 'objcli.Client' explicitly.
func (s *Scope) Client(endpoint string, opts *minio.Options) (objcli.Client, error) {
	var (
		secure bool
		region string
	)

	if opts != nil {
		secure, region = opts.Secure, opts.Region
	}

	client, err := objmem.NewClient(objmem.ClientOptions{
		Backend:  s.backend,
		Endpoint: endpoint,
		Secure:   secure,
		Region:   region,
		Logger:   s.logger,
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// activeScope returns the scope currently intercepting construction, if any.
func activeScope() *Scope {
	lock.Lock()
	defer lock.Unlock()

	return active
}
