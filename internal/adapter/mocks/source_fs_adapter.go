package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"inctrim.dev/pkg/inctrim/internal/adapter"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

// MockSourceFSAdapter is a mock type for the SourceFSAdapter type.
type MockSourceFSAdapter struct {
	mock.Mock
}

// Walk provides a mock function with given fields: ctx, root, fn.
func (_m *MockSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(ctx, root, fn)

	return ret.Error(0)
}

// ReadFile provides a mock function with given fields: ctx, path.
func (_m *MockSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	ret := _m.Called(ctx, path)

	var content []byte
	if v := ret.Get(0); v != nil {
		content = v.([]byte)
	}

	return content, ret.Error(1)
}

// WriteFile provides a mock function with given fields: ctx, path, content.
func (_m *MockSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	ret := _m.Called(ctx, path, content)

	return ret.Error(0)
}

// CreateTemp provides a mock function with given fields: ctx, pattern, content.
func (_m *MockSourceFSAdapter) CreateTemp(ctx context.Context, pattern string, content []byte) (m.Path, error) {
	ret := _m.Called(ctx, pattern, content)

	return ret.Get(0).(m.Path), ret.Error(1)
}

// Remove provides a mock function with given fields: ctx, path.
func (_m *MockSourceFSAdapter) Remove(ctx context.Context, path m.Path) error {
	ret := _m.Called(ctx, path)

	return ret.Error(0)
}

// AbsPath provides a mock function with given fields: ctx, path.
func (_m *MockSourceFSAdapter) AbsPath(ctx context.Context, path m.Path) (m.Path, error) {
	ret := _m.Called(ctx, path)

	return ret.Get(0).(m.Path), ret.Error(1)
}

// NewMockSourceFSAdapter creates a new instance of MockSourceFSAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mk := &MockSourceFSAdapter{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
