package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"inctrim.dev/pkg/inctrim/internal/adapter"
	m "inctrim.dev/pkg/inctrim/internal/model"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// DisplayCompilation provides a mock function with given fields: ctx, result.
func (_m *MockUI) DisplayCompilation(ctx context.Context, result adapter.CompileResult) {
	_m.Called(ctx, result)
}

// DisplaySkipped provides a mock function with given fields: ctx, path.
func (_m *MockUI) DisplaySkipped(ctx context.Context, path m.Path) {
	_m.Called(ctx, path)
}

// DisplayBaselineBroken provides a mock function with given fields: ctx, path.
func (_m *MockUI) DisplayBaselineBroken(ctx context.Context, path m.Path) {
	_m.Called(ctx, path)
}

// DisplayRepairExhausted provides a mock function with given fields: ctx, path.
func (_m *MockUI) DisplayRepairExhausted(ctx context.Context, path m.Path) {
	_m.Called(ctx, path)
}

// DisplayClassification provides a mock function with given fields: ctx, path, classification.
func (_m *MockUI) DisplayClassification(ctx context.Context, path m.Path, classification m.Classification) {
	_m.Called(ctx, path, classification)
}

// DisplayRewrite provides a mock function with given fields: ctx, path, kept, removed.
func (_m *MockUI) DisplayRewrite(ctx context.Context, path m.Path, kept, removed int) {
	_m.Called(ctx, path, kept, removed)
}

// DisplayUnchanged provides a mock function with given fields: ctx, path.
func (_m *MockUI) DisplayUnchanged(ctx context.Context, path m.Path) {
	_m.Called(ctx, path)
}

// DisplayDiff provides a mock function with given fields: ctx, path, before, after.
func (_m *MockUI) DisplayDiff(ctx context.Context, path m.Path, before, after []string) {
	_m.Called(ctx, path, before, after)
}

// DisplayError provides a mock function with given fields: ctx, path, err.
func (_m *MockUI) DisplayError(ctx context.Context, path m.Path, err error) {
	_m.Called(ctx, path, err)
}

// DisplayNoSources provides a mock function with given fields: ctx, root, extensions.
func (_m *MockUI) DisplayNoSources(ctx context.Context, root m.Path, extensions []string) {
	_m.Called(ctx, root, extensions)
}

// DisplaySummary provides a mock function with given fields: ctx, report.
func (_m *MockUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	_m.Called(ctx, report)
}

// NewMockUI creates a new instance of MockUI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mk := &MockUI{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
