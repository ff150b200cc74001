// Package objmem implements an in-memory MinIO compatible object store, a 'Backend' holding the stored state and a
// 'Client' façade exposing it through the 'objcli.Client' interface.
package objmem

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/objtools/miniomock/objstore/objerr"
	"github.com/objtools/miniomock/objstore/objval"
)

// bucketStore is the state held for a single bucket, a version history per key ordered most-recent last.
type bucketStore struct {
	attrs      objval.BucketAttrs
	versioning objval.VersioningStatus
	objects    map[string][]*objval.ObjectVersion
}

// Backend is an in-memory object store which may be shared by any number of 'Client' façades; all operations are
// safe for concurrent use.
//
// Reads always return copies, stored records are never exposed to callers.
type Backend struct {
	lock    sync.RWMutex
	buckets map[string]*bucketStore
	order   []string
	logger  *slog.Logger
}

// BackendOptions encapsulates the options available when creating a new backend.
type BackendOptions struct {
	// Logger is the logger the backend will use, defaults to the global logger.
	Logger *slog.Logger
}

// defaults fills any missing attributes with sane defaults.
func (b *BackendOptions) defaults() {
	if b.Logger == nil {
		b.Logger = slog.Default()
	}
}

// NewBackend creates a new backend which has no buckets/objects.
func NewBackend(options BackendOptions) *Backend {
	options.defaults()

	return &Backend{
		buckets: make(map[string]*bucketStore),
		logger:  options.Logger,
	}
}

// MakeBucket creates a bucket with the given name in the given region.
func (b *Backend) MakeBucket(name, region string) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if _, ok := b.buckets[name]; ok {
		return &objerr.BucketExistsError{Name: name}
	}

	b.buckets[name] = &bucketStore{
		attrs:   objval.BucketAttrs{Name: name, Region: region, CreationDate: time.Now().UTC()},
		objects: make(map[string][]*objval.ObjectVersion),
	}

	b.order = append(b.order, name)

	b.logger.Debug("created bucket", "bucket", name, "region", region)

	return nil
}

// ListBuckets returns the attributes of the existing buckets, in creation order.
func (b *Backend) ListBuckets() []objval.BucketAttrs {
	b.lock.RLock()
	defer b.lock.RUnlock()

	buckets := make([]objval.BucketAttrs, 0, len(b.order))
	for _, name := range b.order {
		buckets = append(buckets, b.buckets[name].attrs)
	}

	return buckets
}

// BucketExists returns a boolean indicating whether the named bucket exists; absence is not an error.
func (b *Backend) BucketExists(name string) bool {
	b.lock.RLock()
	defer b.lock.RUnlock()

	_, ok := b.buckets[name]

	return ok
}

// RemoveBucket removes the named bucket.
//
// NOTE: Only live objects block removal; keys whose latest record is a delete marker don't count.
func (b *Backend) RemoveBucket(name string) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	store, err := b.getBucketRLocked(name)
	if err != nil {
		return err
	}

	for _, history := range store.objects {
		if !history[len(history)-1].IsDeleteMarker {
			return &objerr.BucketNotEmptyError{Name: name}
		}
	}

	delete(b.buckets, name)

	b.order = slices.DeleteFunc(b.order, func(existing string) bool { return existing == name })

	b.logger.Debug("removed bucket", "bucket", name)

	return nil
}

// GetBucketVersioning returns the versioning status of the named bucket.
func (b *Backend) GetBucketVersioning(name string) (objval.VersioningStatus, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	store, err := b.getBucketRLocked(name)
	if err != nil {
		return objval.VersioningDisabled, err
	}

	return store.versioning, nil
}

// SetBucketVersioning updates the versioning status of the named bucket.
//
// NOTE: Disabling versioning retains any existing version histories, they remain until the next write/removal of
// their key.
func (b *Backend) SetBucketVersioning(name string, status objval.VersioningStatus) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if !status.Valid() {
		return &objerr.InvalidArgumentError{
			Argument: "status",
			Reason:   fmt.Sprintf("unknown versioning status '%s'", status),
		}
	}

	store, err := b.getBucketRLocked(name)
	if err != nil {
		return err
	}

	store.versioning = status

	b.logger.Debug("updated bucket versioning", "bucket", name, "status", status)

	return nil
}

// PutObject stores the given body under the given key, appending a new version when the buckets versioning status
// says so, and returns the attributes of the stored record.
func (b *Backend) PutObject(
	bucket, key string,
	body []byte,
	contentType string,
	metadata map[string]string,
) (objval.ObjectAttrs, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	store, err := b.getBucketRLocked(bucket)
	if err != nil {
		return objval.ObjectAttrs{}, err
	}

	sum := md5.Sum(body)

	record := &objval.ObjectVersion{
		ObjectAttrs: objval.ObjectAttrs{
			Key:          key,
			ETag:         hex.EncodeToString(sum[:]),
			Size:         int64(len(body)),
			ContentType:  contentType,
			UserMetadata: maps.Clone(metadata),
			LastModified: time.Now().UTC(),
			IsLatest:     true,
		},
		Body: slices.Clone(body),
	}

	if store.versioning.Versioned() {
		record.VersionID = uuid.NewString()
	}

	putObjectLocked(store, key, record)

	b.logger.Debug("stored object", "bucket", bucket, "key", key, "version", record.VersionID,
		"size", record.Size)

	return record.ObjectAttrs.Clone(), nil
}

// GetObject returns a copy of the stored record for the given key, the latest version when no version id is given.
func (b *Backend) GetObject(bucket, key, versionID string) (*objval.ObjectVersion, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	record, err := b.getObjectRLocked(bucket, key, versionID)
	if err != nil {
		return nil, err
	}

	return &objval.ObjectVersion{ObjectAttrs: record.ObjectAttrs.Clone(), Body: slices.Clone(record.Body)}, nil
}

// StatObject returns the attributes of the stored record for the given key, the latest version when no version id
// is given.
func (b *Backend) StatObject(bucket, key, versionID string) (objval.ObjectAttrs, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	record, err := b.getObjectRLocked(bucket, key, versionID)
	if err != nil {
		return objval.ObjectAttrs{}, err
	}

	return record.ObjectAttrs.Clone(), nil
}

// RemoveObject removes the given key. With a version id the matching record is erased from the history; without
// one the behavior follows the buckets versioning status, unversioned keys are dropped whilst versioned keys gain
// a delete marker.
func (b *Backend) RemoveObject(bucket, key, versionID string) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	store, err := b.getBucketRLocked(bucket)
	if err != nil {
		return err
	}

	history, ok := store.objects[key]
	if !ok {
		return &objerr.NotFoundError{Type: "key", Name: key}
	}

	if versionID != "" {
		return removeVersionLocked(store, key, versionID)
	}

	latest := history[len(history)-1]

	switch {
	case !store.versioning.Versioned():
		delete(store.objects, key)
	case latest.IsDeleteMarker:
		// Already removed, another unqualified remove has no effect.
	default:
		latest.IsLatest = false

		marker := &objval.ObjectVersion{ObjectAttrs: objval.ObjectAttrs{
			Key:            key,
			VersionID:      uuid.NewString(),
			LastModified:   time.Now().UTC(),
			IsDeleteMarker: true,
			IsLatest:       true,
		}}

		store.objects[key] = append(history, marker)
	}

	b.logger.Debug("removed object", "bucket", bucket, "key", key, "version", versionID)

	return nil
}

// ListObjects returns the attributes of the objects in the given bucket which match the given filtering
// parameters, in lexical key order.
//
// Without versions each key contributes its latest record, delete markers included; with versions each key
// contributes its whole history, most-recent last. In non-recursive mode keys with path segments below the prefix
// collapse into a single directory entry.
func (b *Backend) ListObjects(bucket, prefix, startAfter string, recursive, withVersions bool) (
	[]objval.ObjectAttrs, error,
) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	store, err := b.getBucketRLocked(bucket)
	if err != nil {
		return nil, err
	}

	keys := maps.Keys(store.objects)
	slices.Sort(keys)

	var (
		attrs = make([]objval.ObjectAttrs, 0, len(keys))
		dirs  = make(map[string]struct{})
	)

	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) || (startAfter != "" && key <= startAfter) {
			continue
		}

		if !recursive {
			if dir, ok := parentDirectory(prefix, key); ok {
				if _, emitted := dirs[dir]; !emitted {
					dirs[dir] = struct{}{}
					attrs = append(attrs, objval.ObjectAttrs{Key: dir})
				}

				continue
			}
		}

		if !withVersions {
			history := store.objects[key]
			attrs = append(attrs, history[len(history)-1].ObjectAttrs.Clone())

			continue
		}

		for _, record := range store.objects[key] {
			attrs = append(attrs, record.ObjectAttrs.Clone())
		}
	}

	return attrs, nil
}

// getBucketRLocked returns the store for the named bucket, which must exist.
func (b *Backend) getBucketRLocked(name string) (*bucketStore, error) {
	store, ok := b.buckets[name]
	if !ok {
		return nil, &objerr.NotFoundError{Type: "bucket", Name: name}
	}

	return store, nil
}

// getObjectRLocked resolves a key (and optional version id) to a stored record.
//
// NOTE: A delete marker resolves like a missing key, matching what reads against the real service report.
func (b *Backend) getObjectRLocked(bucket, key, versionID string) (*objval.ObjectVersion, error) {
	store, err := b.getBucketRLocked(bucket)
	if err != nil {
		return nil, err
	}

	history, ok := store.objects[key]
	if !ok {
		return nil, &objerr.NotFoundError{Type: "key", Name: key}
	}

	record := history[len(history)-1]

	if versionID != "" {
		idx := slices.IndexFunc(history, func(record *objval.ObjectVersion) bool {
			return record.VersionID == versionID
		})
		if idx == -1 {
			return nil, &objerr.NotFoundError{Type: "version", Name: versionID}
		}

		record = history[idx]
	}

	if record.IsDeleteMarker {
		return nil, &objerr.NotFoundError{Type: "key", Name: key}
	}

	return record, nil
}

// putObjectLocked stores the given record, replacing the keys history entirely on unversioned buckets and
// appending on versioned ones.
func putObjectLocked(store *bucketStore, key string, record *objval.ObjectVersion) {
	if !store.versioning.Versioned() {
		store.objects[key] = []*objval.ObjectVersion{record}
		return
	}

	if history := store.objects[key]; len(history) != 0 {
		history[len(history)-1].IsLatest = false
	}

	store.objects[key] = append(store.objects[key], record)
}

// removeVersionLocked erases the record with the given version id from the keys history.
func removeVersionLocked(store *bucketStore, key, versionID string) error {
	history := store.objects[key]

	idx := slices.IndexFunc(history, func(record *objval.ObjectVersion) bool {
		return record.VersionID == versionID
	})
	if idx == -1 {
		return &objerr.NotFoundError{Type: "version", Name: versionID}
	}

	history = slices.Delete(history, idx, idx+1)
	if len(history) == 0 {
		delete(store.objects, key)
		return nil
	}

	history[len(history)-1].IsLatest = true
	store.objects[key] = history

	return nil
}

// parentDirectory returns the directory entry a key should collapse into when listing non-recursively, if any.
func parentDirectory(prefix, key string) (string, bool) {
	trimmed := strings.Trim(key[len(prefix):], "/")

	idx := strings.Index(trimmed, "/")
	if idx == -1 {
		return "", false
	}

	return prefix + trimmed[:idx+1], true
}
