// Code generated by mockery v2.40.3. DO NOT EDIT.

package objminio

import (
	context "context"
	http "net/http"

	io "io"

	minio "github.com/minio/minio-go/v7"

	mock "github.com/stretchr/testify/mock"

	time "time"

	url "net/url"
)

// mockServiceAPI is an autogenerated mock type for the serviceAPI type
type mockServiceAPI struct {
	mock.Mock
}

// BucketExists provides a mock function with given fields: ctx, bucketName
func (_m *mockServiceAPI) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	ret := _m.Called(ctx, bucketName)

	if len(ret) == 0 {
		panic("no return value specified for BucketExists")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, bucketName)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, bucketName)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, bucketName)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// EndpointURL provides a mock function with given fields:
func (_m *mockServiceAPI) EndpointURL() *url.URL {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for EndpointURL")
	}

	var r0 *url.URL
	if rf, ok := ret.Get(0).(func() *url.URL); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*url.URL)
		}
	}

	return r0
}

// FGetObject provides a mock function with given fields: ctx, bucketName, objectName, filePath, opts
func (_m *mockServiceAPI) FGetObject(ctx context.Context, bucketName string, objectName string, filePath string, opts minio.GetObjectOptions) error {
	ret := _m.Called(ctx, bucketName, objectName, filePath, opts)

	if len(ret) == 0 {
		panic("no return value specified for FGetObject")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, minio.GetObjectOptions) error); ok {
		r0 = rf(ctx, bucketName, objectName, filePath, opts)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FPutObject provides a mock function with given fields: ctx, bucketName, objectName, filePath, opts
func (_m *mockServiceAPI) FPutObject(ctx context.Context, bucketName string, objectName string, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	ret := _m.Called(ctx, bucketName, objectName, filePath, opts)

	if len(ret) == 0 {
		panic("no return value specified for FPutObject")
	}

	var r0 minio.UploadInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, minio.PutObjectOptions) (minio.UploadInfo, error)); ok {
		return rf(ctx, bucketName, objectName, filePath, opts)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, minio.PutObjectOptions) minio.UploadInfo); ok {
		r0 = rf(ctx, bucketName, objectName, filePath, opts)
	} else {
		r0 = ret.Get(0).(minio.UploadInfo)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, string, minio.PutObjectOptions) error); ok {
		r1 = rf(ctx, bucketName, objectName, filePath, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetBucketVersioning provides a mock function with given fields: ctx, bucketName
func (_m *mockServiceAPI) GetBucketVersioning(ctx context.Context, bucketName string) (minio.BucketVersioningConfiguration, error) {
	ret := _m.Called(ctx, bucketName)

	if len(ret) == 0 {
		panic("no return value specified for GetBucketVersioning")
	}

	var r0 minio.BucketVersioningConfiguration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (minio.BucketVersioningConfiguration, error)); ok {
		return rf(ctx, bucketName)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) minio.BucketVersioningConfiguration); ok {
		r0 = rf(ctx, bucketName)
	} else {
		r0 = ret.Get(0).(minio.BucketVersioningConfiguration)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, bucketName)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetObject provides a mock function with given fields: ctx, bucketName, objectName, opts
func (_m *mockServiceAPI) GetObject(ctx context.Context, bucketName string, objectName string, opts minio.GetObjectOptions) (*minio.Object, error) {
	ret := _m.Called(ctx, bucketName, objectName, opts)

	if len(ret) == 0 {
		panic("no return value specified for GetObject")
	}

	var r0 *minio.Object
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, minio.GetObjectOptions) (*minio.Object, error)); ok {
		return rf(ctx, bucketName, objectName, opts)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, minio.GetObjectOptions) *minio.Object); ok {
		r0 = rf(ctx, bucketName, objectName, opts)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*minio.Object)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, minio.GetObjectOptions) error); ok {
		r1 = rf(ctx, bucketName, objectName, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListBuckets provides a mock function with given fields: ctx
func (_m *mockServiceAPI) ListBuckets(ctx context.Context) ([]minio.BucketInfo, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListBuckets")
	}

	var r0 []minio.BucketInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]minio.BucketInfo, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []minio.BucketInfo); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]minio.BucketInfo)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListObjects provides a mock function with given fields: ctx, bucketName, opts
func (_m *mockServiceAPI) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ret := _m.Called(ctx, bucketName, opts)

	if len(ret) == 0 {
		panic("no return value specified for ListObjects")
	}

	var r0 <-chan minio.ObjectInfo
	if rf, ok := ret.Get(0).(func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo); ok {
		r0 = rf(ctx, bucketName, opts)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(<-chan minio.ObjectInfo)
		}
	}

	return r0
}

// MakeBucket provides a mock function with given fields: ctx, bucketName, opts
func (_m *mockServiceAPI) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	ret := _m.Called(ctx, bucketName, opts)

	if len(ret) == 0 {
		panic("no return value specified for MakeBucket")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, minio.MakeBucketOptions) error); ok {
		r0 = rf(ctx, bucketName, opts)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// PresignHeader provides a mock function with given fields: ctx, method, bucketName, objectName, expires, reqParams, extraHeaders
func (_m *mockServiceAPI) PresignHeader(ctx context.Context, method string, bucketName string, objectName string, expires time.Duration, reqParams url.Values, extraHeaders http.Header) (*url.URL, error) {
	ret := _m.Called(ctx, method, bucketName, objectName, expires, reqParams, extraHeaders)

	if len(ret) == 0 {
		panic("no return value specified for PresignHeader")
	}

	var r0 *url.URL
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, time.Duration, url.Values, http.Header) (*url.URL, error)); ok {
		return rf(ctx, method, bucketName, objectName, expires, reqParams, extraHeaders)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, time.Duration, url.Values, http.Header) *url.URL); ok {
		r0 = rf(ctx, method, bucketName, objectName, expires, reqParams, extraHeaders)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*url.URL)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, string, time.Duration, url.Values, http.Header) error); ok {
		r1 = rf(ctx, method, bucketName, objectName, expires, reqParams, extraHeaders)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PresignedGetObject provides a mock function with given fields: ctx, bucketName, objectName, expires, reqParams
func (_m *mockServiceAPI) PresignedGetObject(ctx context.Context, bucketName string, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	ret := _m.Called(ctx, bucketName, objectName, expires, reqParams)

	if len(ret) == 0 {
		panic("no return value specified for PresignedGetObject")
	}

	var r0 *url.URL
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Duration, url.Values) (*url.URL, error)); ok {
		return rf(ctx, bucketName, objectName, expires, reqParams)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Duration, url.Values) *url.URL); ok {
		r0 = rf(ctx, bucketName, objectName, expires, reqParams)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*url.URL)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, time.Duration, url.Values) error); ok {
		r1 = rf(ctx, bucketName, objectName, expires, reqParams)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PresignedPutObject provides a mock function with given fields: ctx, bucketName, objectName, expires
func (_m *mockServiceAPI) PresignedPutObject(ctx context.Context, bucketName string, objectName string, expires time.Duration) (*url.URL, error) {
	ret := _m.Called(ctx, bucketName, objectName, expires)

	if len(ret) == 0 {
		panic("no return value specified for PresignedPutObject")
	}

	var r0 *url.URL
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Duration) (*url.URL, error)); ok {
		return rf(ctx, bucketName, objectName, expires)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Duration) *url.URL); ok {
		r0 = rf(ctx, bucketName, objectName, expires)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*url.URL)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, time.Duration) error); ok {
		r1 = rf(ctx, bucketName, objectName, expires)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PutObject provides a mock function with given fields: ctx, bucketName, objectName, reader, objectSize, opts
func (_m *mockServiceAPI) PutObject(ctx context.Context, bucketName string, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	ret := _m.Called(ctx, bucketName, objectName, reader, objectSize, opts)

	if len(ret) == 0 {
		panic("no return value specified for PutObject")
	}

	var r0 minio.UploadInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, io.Reader, int64, minio.PutObjectOptions) (minio.UploadInfo, error)); ok {
		return rf(ctx, bucketName, objectName, reader, objectSize, opts)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, io.Reader, int64, minio.PutObjectOptions) minio.UploadInfo); ok {
		r0 = rf(ctx, bucketName, objectName, reader, objectSize, opts)
	} else {
		r0 = ret.Get(0).(minio.UploadInfo)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, io.Reader, int64, minio.PutObjectOptions) error); ok {
		r1 = rf(ctx, bucketName, objectName, reader, objectSize, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RemoveBucket provides a mock function with given fields: ctx, bucketName
func (_m *mockServiceAPI) RemoveBucket(ctx context.Context, bucketName string) error {
	ret := _m.Called(ctx, bucketName)

	if len(ret) == 0 {
		panic("no return value specified for RemoveBucket")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, bucketName)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RemoveObject provides a mock function with given fields: ctx, bucketName, objectName, opts
func (_m *mockServiceAPI) RemoveObject(ctx context.Context, bucketName string, objectName string, opts minio.RemoveObjectOptions) error {
	ret := _m.Called(ctx, bucketName, objectName, opts)

	if len(ret) == 0 {
		panic("no return value specified for RemoveObject")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, minio.RemoveObjectOptions) error); ok {
		r0 = rf(ctx, bucketName, objectName, opts)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetBucketVersioning provides a mock function with given fields: ctx, bucketName, config
func (_m *mockServiceAPI) SetBucketVersioning(ctx context.Context, bucketName string, config minio.BucketVersioningConfiguration) error {
	ret := _m.Called(ctx, bucketName, config)

	if len(ret) == 0 {
		panic("no return value specified for SetBucketVersioning")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, minio.BucketVersioningConfiguration) error); ok {
		r0 = rf(ctx, bucketName, config)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// StatObject provides a mock function with given fields: ctx, bucketName, objectName, opts
func (_m *mockServiceAPI) StatObject(ctx context.Context, bucketName string, objectName string, opts minio.GetObjectOptions) (minio.ObjectInfo, error) {
	ret := _m.Called(ctx, bucketName, objectName, opts)

	if len(ret) == 0 {
		panic("no return value specified for StatObject")
	}

	var r0 minio.ObjectInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, minio.GetObjectOptions) (minio.ObjectInfo, error)); ok {
		return rf(ctx, bucketName, objectName, opts)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, minio.GetObjectOptions) minio.ObjectInfo); ok {
		r0 = rf(ctx, bucketName, objectName, opts)
	} else {
		r0 = ret.Get(0).(minio.ObjectInfo)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, minio.GetObjectOptions) error); ok {
		r1 = rf(ctx, bucketName, objectName, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// newMockServiceAPI creates a new instance of mockServiceAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func newMockServiceAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockServiceAPI {
	mock := &mockServiceAPI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
