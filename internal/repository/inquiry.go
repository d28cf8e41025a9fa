package repository

import (
	"context"

	"inquiryapi/internal/model"
)

// InquiryRepository defines data access for inquiries using SQL queries only.
// Persistence operations only; presence validation happens in the service.
type InquiryRepository interface {
	// Create inserts one inquiry row and returns it with the database-assigned ID and CreatedAt.
	Create(ctx context.Context, inq *model.Inquiry) (*model.Inquiry, error)

	// List returns a page of inquiries, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Inquiry], error)

	// ListAfter returns up to limit inquiries with id > afterID in ascending id order.
	// Rows inserted while a caller walks the table never shift earlier pages.
	ListAfter(ctx context.Context, afterID int64, limit int) ([]model.Inquiry, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
