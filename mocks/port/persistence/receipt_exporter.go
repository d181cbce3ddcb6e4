package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/payment-console/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockReceiptExporter is a mock type for the ReceiptExporter type
type MockReceiptExporter struct {
	mock.Mock
}

type MockReceiptExporter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReceiptExporter) EXPECT() *MockReceiptExporter_Expecter {
	return &MockReceiptExporter_Expecter{mock: &_m.Mock}
}

// ExportReceipt provides a mock function with given fields: ctx, owner, receipt
func (_m *MockReceiptExporter) ExportReceipt(ctx context.Context, owner string, receipt entity.Receipt) (string, error) {
	ret := _m.Called(ctx, owner, receipt)

	if len(ret) == 0 {
		panic("no return value specified for ExportReceipt")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.Receipt) (string, error)); ok {
		return rf(ctx, owner, receipt)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.Receipt) string); ok {
		r0 = rf(ctx, owner, receipt)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, entity.Receipt) error); ok {
		r1 = rf(ctx, owner, receipt)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReceiptExporter_ExportReceipt_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ExportReceipt'
type MockReceiptExporter_ExportReceipt_Call struct {
	*mock.Call
}

// ExportReceipt is a helper method to define mock.On call
//   - ctx context.Context
//   - owner string
//   - receipt entity.Receipt
func (_e *MockReceiptExporter_Expecter) ExportReceipt(ctx interface{}, owner interface{}, receipt interface{}) *MockReceiptExporter_ExportReceipt_Call {
	return &MockReceiptExporter_ExportReceipt_Call{Call: _e.mock.On("ExportReceipt", ctx, owner, receipt)}
}

func (_c *MockReceiptExporter_ExportReceipt_Call) Run(run func(ctx context.Context, owner string, receipt entity.Receipt)) *MockReceiptExporter_ExportReceipt_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(entity.Receipt))
	})
	return _c
}

func (_c *MockReceiptExporter_ExportReceipt_Call) Return(_a0 string, _a1 error) *MockReceiptExporter_ExportReceipt_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReceiptExporter_ExportReceipt_Call) RunAndReturn(run func(context.Context, string, entity.Receipt) (string, error)) *MockReceiptExporter_ExportReceipt_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockReceiptExporter creates a new instance of MockReceiptExporter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReceiptExporter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReceiptExporter {
	mock := &MockReceiptExporter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
