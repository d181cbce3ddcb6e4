package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/payment-console/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockStatementExporter is a mock type for the StatementExporter type
type MockStatementExporter struct {
	mock.Mock
}

type MockStatementExporter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStatementExporter) EXPECT() *MockStatementExporter_Expecter {
	return &MockStatementExporter_Expecter{mock: &_m.Mock}
}

// ExportStatement provides a mock function with given fields: ctx, owner, payments
func (_m *MockStatementExporter) ExportStatement(ctx context.Context, owner string, payments []*entity.Payment) (string, error) {
	ret := _m.Called(ctx, owner, payments)

	if len(ret) == 0 {
		panic("no return value specified for ExportStatement")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []*entity.Payment) (string, error)); ok {
		return rf(ctx, owner, payments)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, []*entity.Payment) string); ok {
		r0 = rf(ctx, owner, payments)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, []*entity.Payment) error); ok {
		r1 = rf(ctx, owner, payments)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStatementExporter_ExportStatement_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ExportStatement'
type MockStatementExporter_ExportStatement_Call struct {
	*mock.Call
}

// ExportStatement is a helper method to define mock.On call
//   - ctx context.Context
//   - owner string
//   - payments []*entity.Payment
func (_e *MockStatementExporter_Expecter) ExportStatement(ctx interface{}, owner interface{}, payments interface{}) *MockStatementExporter_ExportStatement_Call {
	return &MockStatementExporter_ExportStatement_Call{Call: _e.mock.On("ExportStatement", ctx, owner, payments)}
}

func (_c *MockStatementExporter_ExportStatement_Call) Run(run func(ctx context.Context, owner string, payments []*entity.Payment)) *MockStatementExporter_ExportStatement_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].([]*entity.Payment))
	})
	return _c
}

func (_c *MockStatementExporter_ExportStatement_Call) Return(_a0 string, _a1 error) *MockStatementExporter_ExportStatement_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStatementExporter_ExportStatement_Call) RunAndReturn(run func(context.Context, string, []*entity.Payment) (string, error)) *MockStatementExporter_ExportStatement_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockStatementExporter creates a new instance of MockStatementExporter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockStatementExporter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatementExporter {
	mock := &MockStatementExporter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
