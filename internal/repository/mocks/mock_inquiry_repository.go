package mocks

import (
	"context"

	"inquiryapi/internal/model"
	"inquiryapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inq *model.Inquiry) (*model.Inquiry, error) {
	args := m.Called(ctx, inq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Inquiry], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Inquiry]), args.Error(1)
}

func (m *MockInquiryRepository) ListAfter(ctx context.Context, afterID int64, limit int) ([]model.Inquiry, error) {
	args := m.Called(ctx, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Inquiry), args.Error(1)
}
