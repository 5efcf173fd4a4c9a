package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"inctrim.dev/pkg/inctrim/internal/domain"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// Trim provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Trim(ctx context.Context, args domain.TrimArgs) (m.RunReport, error) {
	ret := _m.Called(ctx, args)

	var r0 m.RunReport
	if rf, ok := ret.Get(0).(func(context.Context, domain.TrimArgs) m.RunReport); ok {
		r0 = rf(ctx, args)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(m.RunReport)
	}

	return r0, ret.Error(1)
}

// View provides a mock function with given fields: ctx, path.
func (_m *MockWorkflow) View(ctx context.Context, path m.Path) error {
	ret := _m.Called(ctx, path)

	return ret.Error(0)
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mk := &MockWorkflow{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
