package objmem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/objtools/miniomock/objstore/objerr"
	"github.com/objtools/miniomock/objstore/objval"
)

func testBackend(t *testing.T, buckets ...string) *Backend {
	backend := NewBackend(BackendOptions{})

	for _, bucket := range buckets {
		require.NoError(t, backend.MakeBucket(bucket, DefaultRegion))
	}

	return backend
}

func testPut(t *testing.T, backend *Backend, bucket, key, body string) objval.ObjectAttrs {
	attrs, err := backend.PutObject(bucket, key, []byte(body), DefaultContentType, nil)
	require.NoError(t, err)

	return attrs
}

func TestBackendMakeBucket(t *testing.T) {
	backend := testBackend(t)

	require.NoError(t, backend.MakeBucket("bucket", "eu-west-1"))
	require.True(t, backend.BucketExists("bucket"))
	require.False(t, backend.BucketExists("other"))

	err := backend.MakeBucket("bucket", "eu-west-1")
	require.True(t, objerr.IsBucketExistsError(err))
}

func TestBackendListBucketsInCreationOrder(t *testing.T) {
	backend := testBackend(t, "bravo", "alpha", "charlie")

	buckets := backend.ListBuckets()
	require.Len(t, buckets, 3)

	names := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		require.NotZero(t, bucket.CreationDate)
		names = append(names, bucket.Name)
	}

	require.Equal(t, []string{"bravo", "alpha", "charlie"}, names)
}

func TestBackendRemoveBucket(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		backend := testBackend(t)
		require.True(t, objerr.IsNotFoundError(backend.RemoveBucket("bucket")))
	})

	t.Run("Empty", func(t *testing.T) {
		backend := testBackend(t, "bucket")
		require.NoError(t, backend.RemoveBucket("bucket"))
		require.False(t, backend.BucketExists("bucket"))
		require.Empty(t, backend.ListBuckets())
	})

	t.Run("HoldsLiveObjects", func(t *testing.T) {
		backend := testBackend(t, "bucket")
		testPut(t, backend, "bucket", "key", "body")

		require.True(t, objerr.IsBucketNotEmptyError(backend.RemoveBucket("bucket")))
	})

	t.Run("HoldsOnlyDeleteMarkedKeys", func(t *testing.T) {
		backend := testBackend(t, "bucket")
		require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningEnabled))

		testPut(t, backend, "bucket", "key", "body")
		require.NoError(t, backend.RemoveObject("bucket", "key", ""))

		require.NoError(t, backend.RemoveBucket("bucket"))
	})
}

func TestBackendBucketVersioning(t *testing.T) {
	backend := testBackend(t, "bucket")

	status, err := backend.GetBucketVersioning("bucket")
	require.NoError(t, err)
	require.Equal(t, objval.VersioningDisabled, status)

	for _, update := range []objval.VersioningStatus{
		objval.VersioningEnabled,
		objval.VersioningSuspended,
		objval.VersioningDisabled,
	} {
		require.NoError(t, backend.SetBucketVersioning("bucket", update))

		status, err = backend.GetBucketVersioning("bucket")
		require.NoError(t, err)
		require.Equal(t, update, status)
	}

	require.True(t, objerr.IsInvalidArgumentError(backend.SetBucketVersioning("bucket", "Paused")))

	_, err = backend.GetBucketVersioning("missing")
	require.True(t, objerr.IsNotFoundError(err))
}

func TestBackendPutObjectUnversioned(t *testing.T) {
	backend := testBackend(t, "bucket")

	attrs := testPut(t, backend, "bucket", "key", "hello")
	require.Equal(t, "key", attrs.Key)
	require.Equal(t, int64(5), attrs.Size)
	require.Equal(t, "5d41402abc4b2a76b9719d911017c592", attrs.ETag)
	require.Empty(t, attrs.VersionID)
	require.True(t, attrs.IsLatest)
	require.NotZero(t, attrs.LastModified)

	// Overwrites replace the single live record
	testPut(t, backend, "bucket", "key", "world")

	objects, err := backend.ListObjects("bucket", "", "", true, true)
	require.NoError(t, err)
	require.Len(t, objects, 1)

	record, err := backend.GetObject("bucket", "key", "")
	require.NoError(t, err)
	require.Equal(t, []byte("world"), record.Body)
}

func TestBackendPutObjectClonesMetadata(t *testing.T) {
	backend := testBackend(t, "bucket")

	metadata := map[string]string{"owner": "tools"}

	_, err := backend.PutObject("bucket", "key", []byte("body"), DefaultContentType, metadata)
	require.NoError(t, err)

	metadata["owner"] = "somebody else"

	attrs, err := backend.StatObject("bucket", "key", "")
	require.NoError(t, err)
	require.Equal(t, "tools", attrs.UserMetadata["owner"])
}

func TestBackendPutObjectVersioned(t *testing.T) {
	for _, status := range []objval.VersioningStatus{objval.VersioningEnabled, objval.VersioningSuspended} {
		t.Run(string(status), func(t *testing.T) {
			backend := testBackend(t, "bucket")
			require.NoError(t, backend.SetBucketVersioning("bucket", status))

			first := testPut(t, backend, "bucket", "key", "one")
			second := testPut(t, backend, "bucket", "key", "two")

			require.NotEmpty(t, first.VersionID)
			require.NotEmpty(t, second.VersionID)
			require.NotEqual(t, first.VersionID, second.VersionID)

			versions, err := backend.ListObjects("bucket", "", "", true, true)
			require.NoError(t, err)
			require.Len(t, versions, 2)

			// Histories are ordered most-recent last
			require.Equal(t, first.VersionID, versions[0].VersionID)
			require.False(t, versions[0].IsLatest)
			require.Equal(t, second.VersionID, versions[1].VersionID)
			require.True(t, versions[1].IsLatest)
		})
	}
}

func TestBackendDisableVersioningRetainsHistoryUntilWrite(t *testing.T) {
	backend := testBackend(t, "bucket")
	require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningEnabled))

	testPut(t, backend, "bucket", "key", "one")
	testPut(t, backend, "bucket", "key", "two")

	require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningDisabled))

	versions, err := backend.ListObjects("bucket", "", "", true, true)
	require.NoError(t, err)
	require.Len(t, versions, 2)

	// The next write collapses the key back to a single unversioned record
	attrs := testPut(t, backend, "bucket", "key", "three")
	require.Empty(t, attrs.VersionID)

	versions, err = backend.ListObjects("bucket", "", "", true, true)
	require.NoError(t, err)
	require.Len(t, versions, 1)
}

func TestBackendGetObject(t *testing.T) {
	backend := testBackend(t, "bucket")
	require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningEnabled))

	first := testPut(t, backend, "bucket", "key", "one")
	second := testPut(t, backend, "bucket", "key", "two")

	t.Run("LatestByDefault", func(t *testing.T) {
		record, err := backend.GetObject("bucket", "key", "")
		require.NoError(t, err)
		require.Equal(t, []byte("two"), record.Body)
		require.Equal(t, second.VersionID, record.VersionID)
	})

	t.Run("ExplicitVersion", func(t *testing.T) {
		record, err := backend.GetObject("bucket", "key", first.VersionID)
		require.NoError(t, err)
		require.Equal(t, []byte("one"), record.Body)
		require.False(t, record.IsLatest)
	})

	t.Run("UnknownVersion", func(t *testing.T) {
		_, err := backend.GetObject("bucket", "key", "not-a-version")
		require.True(t, objerr.IsNotFoundError(err))
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := backend.GetObject("bucket", "missing", "")
		require.True(t, objerr.IsNotFoundError(err))
	})

	t.Run("UnknownBucket", func(t *testing.T) {
		_, err := backend.GetObject("missing", "key", "")
		require.True(t, objerr.IsNotFoundError(err))
	})
}

func TestBackendGetObjectReturnsCopies(t *testing.T) {
	backend := testBackend(t, "bucket")

	_, err := backend.PutObject("bucket", "key", []byte("body"), DefaultContentType,
		map[string]string{"owner": "tools"})
	require.NoError(t, err)

	record, err := backend.GetObject("bucket", "key", "")
	require.NoError(t, err)

	record.Body[0] = 'x'
	record.UserMetadata["owner"] = "somebody else"

	record, err = backend.GetObject("bucket", "key", "")
	require.NoError(t, err)
	require.Equal(t, []byte("body"), record.Body)
	require.Equal(t, "tools", record.UserMetadata["owner"])
}

func TestBackendDeleteMarkersHideKey(t *testing.T) {
	backend := testBackend(t, "bucket")
	require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningEnabled))

	attrs := testPut(t, backend, "bucket", "key", "body")
	require.NoError(t, backend.RemoveObject("bucket", "key", ""))

	t.Run("GetLatest", func(t *testing.T) {
		_, err := backend.GetObject("bucket", "key", "")
		require.True(t, objerr.IsNotFoundError(err))
	})

	t.Run("StatLatest", func(t *testing.T) {
		_, err := backend.StatObject("bucket", "key", "")
		require.True(t, objerr.IsNotFoundError(err))
	})

	t.Run("GetMarkerByVersion", func(t *testing.T) {
		versions, err := backend.ListObjects("bucket", "", "", true, true)
		require.NoError(t, err)
		require.Len(t, versions, 2)
		require.True(t, versions[1].IsDeleteMarker)

		_, err = backend.GetObject("bucket", "key", versions[1].VersionID)
		require.True(t, objerr.IsNotFoundError(err))
	})

	t.Run("OlderVersionStillReadable", func(t *testing.T) {
		record, err := backend.GetObject("bucket", "key", attrs.VersionID)
		require.NoError(t, err)
		require.Equal(t, []byte("body"), record.Body)
	})
}

func TestBackendRemoveObjectUnversioned(t *testing.T) {
	backend := testBackend(t, "bucket")

	testPut(t, backend, "bucket", "key", "body")

	require.NoError(t, backend.RemoveObject("bucket", "key", ""))

	objects, err := backend.ListObjects("bucket", "", "", true, true)
	require.NoError(t, err)
	require.Empty(t, objects)

	// A second removal references a key which no longer exists
	require.True(t, objerr.IsNotFoundError(backend.RemoveObject("bucket", "key", "")))
}

func TestBackendRemoveObjectAppendsSingleMarker(t *testing.T) {
	backend := testBackend(t, "bucket")
	require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningEnabled))

	testPut(t, backend, "bucket", "key", "body")

	require.NoError(t, backend.RemoveObject("bucket", "key", ""))
	require.NoError(t, backend.RemoveObject("bucket", "key", ""))

	versions, err := backend.ListObjects("bucket", "", "", true, true)
	require.NoError(t, err)
	require.Len(t, versions, 2)

	marker := versions[1]
	require.True(t, marker.IsDeleteMarker)
	require.True(t, marker.IsLatest)
	require.NotEmpty(t, marker.VersionID)
	require.Zero(t, marker.Size)
}

func TestBackendRemoveObjectByVersion(t *testing.T) {
	backend := testBackend(t, "bucket")
	require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningEnabled))

	first := testPut(t, backend, "bucket", "key", "one")
	second := testPut(t, backend, "bucket", "key", "two")

	t.Run("UnknownVersion", func(t *testing.T) {
		require.True(t, objerr.IsNotFoundError(backend.RemoveObject("bucket", "key", "not-a-version")))
	})

	t.Run("RemovingLatestExposesPrevious", func(t *testing.T) {
		require.NoError(t, backend.RemoveObject("bucket", "key", second.VersionID))

		record, err := backend.GetObject("bucket", "key", "")
		require.NoError(t, err)
		require.Equal(t, first.VersionID, record.VersionID)
		require.True(t, record.IsLatest)
	})

	t.Run("RemovingFinalVersionDropsKey", func(t *testing.T) {
		require.NoError(t, backend.RemoveObject("bucket", "key", first.VersionID))

		objects, err := backend.ListObjects("bucket", "", "", true, true)
		require.NoError(t, err)
		require.Empty(t, objects)
	})
}

func TestBackendRemoveDeleteMarkerByVersion(t *testing.T) {
	backend := testBackend(t, "bucket")
	require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningEnabled))

	testPut(t, backend, "bucket", "key", "body")
	require.NoError(t, backend.RemoveObject("bucket", "key", ""))

	versions, err := backend.ListObjects("bucket", "", "", true, true)
	require.NoError(t, err)
	require.Len(t, versions, 2)

	// Erasing the marker re-exposes the object
	require.NoError(t, backend.RemoveObject("bucket", "key", versions[1].VersionID))

	record, err := backend.GetObject("bucket", "key", "")
	require.NoError(t, err)
	require.Equal(t, []byte("body"), record.Body)
	require.True(t, record.IsLatest)
}

func TestBackendListObjects(t *testing.T) {
	type test struct {
		name       string
		keys       []string
		prefix     string
		startAfter string
		recursive  bool
		expected   []string
	}

	tests := []*test{
		{
			name:      "RecursiveLexicalOrder",
			keys:      []string{"zulu", "alpha", "mike"},
			recursive: true,
			expected:  []string{"alpha", "mike", "zulu"},
		},
		{
			name:      "RecursivePrefix",
			keys:      []string{"logs/2024/one", "logs/2025/two", "data/three"},
			prefix:    "logs/",
			recursive: true,
			expected:  []string{"logs/2024/one", "logs/2025/two"},
		},
		{
			name:       "StartAfterSkipsUpToAndIncludingMarker",
			keys:       []string{"a", "b", "c", "d"},
			startAfter: "b",
			recursive:  true,
			expected:   []string{"c", "d"},
		},
		{
			name:     "DirectoriesCollapseAtRoot",
			keys:     []string{"a/b/c/object1", "a/b/object2", "a/object3", "object4"},
			expected: []string{"a/", "object4"},
		},
		{
			name:     "DirectoriesCollapseBelowPrefix",
			keys:     []string{"a/b/c/object1", "a/b/object2", "a/object3", "object4"},
			prefix:   "a/",
			expected: []string{"a/b/", "a/object3"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			backend := testBackend(t, "bucket")

			for _, key := range test.keys {
				testPut(t, backend, "bucket", key, "body")
			}

			objects, err := backend.ListObjects("bucket", test.prefix, test.startAfter, test.recursive, false)
			require.NoError(t, err)

			keys := make([]string, 0, len(objects))
			for _, object := range objects {
				keys = append(keys, object.Key)
			}

			require.Equal(t, test.expected, keys)
		})
	}

	t.Run("UnknownBucket", func(t *testing.T) {
		backend := testBackend(t)

		_, err := backend.ListObjects("bucket", "", "", true, false)
		require.True(t, objerr.IsNotFoundError(err))
	})
}

func TestBackendListObjectsReportsDeleteMarkedKeys(t *testing.T) {
	backend := testBackend(t, "bucket")
	require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningEnabled))

	testPut(t, backend, "bucket", "gone", "body")
	testPut(t, backend, "bucket", "live", "body")
	require.NoError(t, backend.RemoveObject("bucket", "gone", ""))

	objects, err := backend.ListObjects("bucket", "", "", true, false)
	require.NoError(t, err)
	require.Len(t, objects, 2)

	require.Equal(t, "gone", objects[0].Key)
	require.True(t, objects[0].IsDeleteMarker)
	require.Equal(t, "live", objects[1].Key)
	require.False(t, objects[1].IsDeleteMarker)
}

func TestBackendListObjectsWithVersions(t *testing.T) {
	backend := testBackend(t, "bucket")
	require.NoError(t, backend.SetBucketVersioning("bucket", objval.VersioningEnabled))

	for i := 1; i <= 3; i++ {
		testPut(t, backend, "bucket", "key", fmt.Sprintf("body-%d", i))
	}

	versions, err := backend.ListObjects("bucket", "", "", true, true)
	require.NoError(t, err)
	require.Len(t, versions, 3)

	for i, version := range versions {
		require.Equal(t, i == len(versions)-1, version.IsLatest)
		require.NotEmpty(t, version.VersionID)
	}
}
