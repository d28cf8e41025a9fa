package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"inquiryapi/internal/storage"
)

// MockStorage records uploads and presign calls.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, obj storage.Object) (storage.Stored, error) {
	args := m.Called(ctx, obj)
	if fn, ok := args.Get(0).(func(storage.Object) storage.Stored); ok {
		return fn(obj), args.Error(1)
	}
	return args.Get(0).(storage.Stored), args.Error(1)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
