package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

// MockReportStore is a mock type for the ReportStore type.
type MockReportStore struct {
	mock.Mock
}

// SaveReport provides a mock function with given fields: ctx, path, report.
func (_m *MockReportStore) SaveReport(ctx context.Context, path m.Path, report m.RunReport) error {
	ret := _m.Called(ctx, path, report)

	return ret.Error(0)
}

// LoadReport provides a mock function with given fields: ctx, path.
func (_m *MockReportStore) LoadReport(ctx context.Context, path m.Path) (m.RunReport, error) {
	ret := _m.Called(ctx, path)

	return ret.Get(0).(m.RunReport), ret.Error(1)
}

// NewMockReportStore creates a new instance of MockReportStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mk := &MockReportStore{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
