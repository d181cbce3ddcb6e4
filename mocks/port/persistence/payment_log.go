package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/payment-console/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockPaymentLog is a mock type for the PaymentLog type
type MockPaymentLog struct {
	mock.Mock
}

type MockPaymentLog_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentLog) EXPECT() *MockPaymentLog_Expecter {
	return &MockPaymentLog_Expecter{mock: &_m.Mock}
}

// Append provides a mock function with given fields: ctx, entry
func (_m *MockPaymentLog) Append(ctx context.Context, entry entity.PaymentLogEntry) error {
	ret := _m.Called(ctx, entry)

	if len(ret) == 0 {
		panic("no return value specified for Append")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.PaymentLogEntry) error); ok {
		r0 = rf(ctx, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPaymentLog_Append_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Append'
type MockPaymentLog_Append_Call struct {
	*mock.Call
}

// Append is a helper method to define mock.On call
//   - ctx context.Context
//   - entry entity.PaymentLogEntry
func (_e *MockPaymentLog_Expecter) Append(ctx interface{}, entry interface{}) *MockPaymentLog_Append_Call {
	return &MockPaymentLog_Append_Call{Call: _e.mock.On("Append", ctx, entry)}
}

func (_c *MockPaymentLog_Append_Call) Run(run func(ctx context.Context, entry entity.PaymentLogEntry)) *MockPaymentLog_Append_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.PaymentLogEntry))
	})
	return _c
}

func (_c *MockPaymentLog_Append_Call) Return(_a0 error) *MockPaymentLog_Append_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPaymentLog_Append_Call) RunAndReturn(run func(context.Context, entity.PaymentLogEntry) error) *MockPaymentLog_Append_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPaymentLog creates a new instance of MockPaymentLog. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPaymentLog(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentLog {
	mock := &MockPaymentLog{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
