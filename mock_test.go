package ais2dw12

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTransport is a testify mock of Transport. ReadRegister copies the
// first return value into the caller's buffer.
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) ReadRegister(ctx context.Context, reg byte, buf []byte) error {
	args := m.Called(ctx, reg, buf)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buf) {
		copy(buf, data)
	}
	return args.Error(1)
}

func (m *MockTransport) WriteRegister(ctx context.Context, reg byte, buf []byte) error {
	args := m.Called(ctx, reg, buf)
	return args.Error(0)
}

// MockI2CBus is a testify mock of I2CBus.
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
		copy(buffer, data)
	}
	return args.Error(1)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
