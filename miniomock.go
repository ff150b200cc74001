// Package miniomock provides an in-memory double for MinIO compatible object storage, swapped in through a
// construction seam: code takes its client from 'New' (a drop-in for 'minio.New') and tests activate an
// interception scope which reroutes every construction to one shared in-memory backend.
package miniomock

import (
	"errors"

	"github.com/minio/minio-go/v7"

	"github.com/objtools/miniomock/objstore/objcli"
	"github.com/objtools/miniomock/objstore/objcli/objminio"
)

// New mirrors 'minio.New', returning a client for the given endpoint.
//
// Outside an interception scope the returned client defers to a real SDK client constructed with the given
// options. Whilst a scope is active every call returns an in-memory client bound to the scope's backend, whatever
// the endpoint/credentials; clients constructed before activation are unaffected and keep talking to their real
// endpoints.
func New(endpoint string, opts *minio.Options) (objcli.Client, error) {
	if opts == nil {
		return nil, errors.New("no options provided")
	}

	if scope := activeScope(); scope != nil {
		return scope.Client(endpoint, opts)
	}

	client, err := minio.New(endpoint, opts)
	if err != nil {
		return nil, err
	}

	return objminio.NewClient(objminio.ClientOptions{ServiceAPI: client}), nil
}
