package postgres

import (
	"context"
	"database/sql"

	"inquiryapi/internal/model"
	"inquiryapi/internal/repository"
)

// InquiryPostgres is a PostgreSQL implementation of repository.InquiryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type InquiryPostgres struct {
	db *sql.DB
}

// NewInquiryPostgres creates a new InquiryPostgres repository.
func NewInquiryPostgres(db *sql.DB) *InquiryPostgres {
	return &InquiryPostgres{db: db}
}

var _ repository.InquiryRepository = (*InquiryPostgres)(nil)

// Create inserts one inquiry row on a dedicated connection.
// The connection is acquired for this call only and released on every return path.
func (r *InquiryPostgres) Create(ctx context.Context, inq *model.Inquiry) (*model.Inquiry, error) {
	const q = `
		INSERT INTO inquiries (field_of_study, destination, education_level)
		VALUES ($1, $2, $3)
		RETURNING id, field_of_study, destination, education_level, created_at
	`
	// The driver error is returned as is; its text becomes the 500 message.
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	row := conn.QueryRowContext(ctx, q,
		inq.FieldOfStudy,
		inq.Destination,
		inq.EducationLevel,
	)
	var out model.Inquiry
	if err := row.Scan(
		&out.ID,
		&out.FieldOfStudy,
		&out.Destination,
		&out.EducationLevel,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns inquiries using LIMIT/OFFSET pagination and a total count.
func (r *InquiryPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Inquiry], error) {
	const qCount = `SELECT COUNT(*) FROM inquiries`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, field_of_study, destination, education_level, created_at
		FROM inquiries
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	items, err := r.query(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Inquiry]{
		Items: items,
		Total: total,
	}, nil
}

// ListAfter pages by primary key, so concurrent inserts only ever land after the cursor.
func (r *InquiryPostgres) ListAfter(ctx context.Context, afterID int64, limit int) ([]model.Inquiry, error) {
	const q = `
		SELECT id, field_of_study, destination, education_level, created_at
		FROM inquiries
		WHERE id > $1
		ORDER BY id ASC
		LIMIT $2
	`
	return r.query(ctx, q, afterID, limit)
}

func (r *InquiryPostgres) query(ctx context.Context, q string, args ...any) ([]model.Inquiry, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Inquiry, 0)
	for rows.Next() {
		var inq model.Inquiry
		if err := rows.Scan(
			&inq.ID,
			&inq.FieldOfStudy,
			&inq.Destination,
			&inq.EducationLevel,
			&inq.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
