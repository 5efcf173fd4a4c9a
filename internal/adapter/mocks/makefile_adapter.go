package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

// MockMakefileAdapter is a mock type for the MakefileAdapter type.
type MockMakefileAdapter struct {
	mock.Mock
}

// ReadVars provides a mock function with given fields: ctx, path.
func (_m *MockMakefileAdapter) ReadVars(ctx context.Context, path m.Path) (map[string]string, error) {
	ret := _m.Called(ctx, path)

	var vars map[string]string
	if v := ret.Get(0); v != nil {
		vars = v.(map[string]string)
	}

	return vars, ret.Error(1)
}

// NewMockMakefileAdapter creates a new instance of MockMakefileAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMakefileAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMakefileAdapter {
	mk := &MockMakefileAdapter{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
