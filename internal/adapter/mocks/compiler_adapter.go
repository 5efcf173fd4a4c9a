// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"inctrim.dev/pkg/inctrim/internal/adapter"
)

// MockCompilerAdapter is a mock type for the CompilerAdapter type.
type MockCompilerAdapter struct {
	mock.Mock
}

// Run provides a mock function with given fields: ctx, compiler, args.
func (_m *MockCompilerAdapter) Run(ctx context.Context, compiler string, args []string) (adapter.CompileResult, error) {
	ret := _m.Called(ctx, compiler, args)

	if rf, ok := ret.Get(0).(func(context.Context, string, []string) (adapter.CompileResult, error)); ok {
		return rf(ctx, compiler, args)
	}

	return ret.Get(0).(adapter.CompileResult), ret.Error(1)
}

// NewMockCompilerAdapter creates a new instance of MockCompilerAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCompilerAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCompilerAdapter {
	m := &MockCompilerAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
