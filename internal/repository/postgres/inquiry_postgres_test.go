package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"inquiryapi/internal/model"
	"inquiryapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inquiryColumns = []string{"id", "field_of_study", "destination", "education_level", "created_at"}

func TestInquiryPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewInquiryPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		now := time.Now().UTC()
		inq := &model.Inquiry{
			FieldOfStudy:   "Computer Science & IT",
			Destination:    "Canada",
			EducationLevel: "Graduate",
		}

		rows := sqlmock.NewRows(inquiryColumns).
			AddRow(int64(1), inq.FieldOfStudy, inq.Destination, inq.EducationLevel, now)

		mock.ExpectQuery("INSERT INTO inquiries").
			WithArgs("Computer Science & IT", "Canada", "Graduate").
			WillReturnRows(rows)

		result, err := repo.Create(ctx, inq)

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(1), result.ID)
		assert.Equal(t, "Computer Science & IT", result.FieldOfStudy)
		assert.Equal(t, "Canada", result.Destination)
		assert.Equal(t, "Graduate", result.EducationLevel)
		assert.Equal(t, now, result.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, 0, db.Stats().InUse, "connection must be released after success")
	})

	t.Run("statement error releases connection", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO inquiries").
			WithArgs("Engineering", "Germany", "Doctorate").
			WillReturnError(errors.New("relation \"inquiries\" does not exist"))

		result, err := repo.Create(ctx, &model.Inquiry{
			FieldOfStudy:   "Engineering",
			Destination:    "Germany",
			EducationLevel: "Doctorate",
		})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, 0, db.Stats().InUse, "connection must be released after failure")
	})
}

func TestInquiryPostgres_Create_ClosedDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()
	require.NoError(t, db.Close())

	repo := NewInquiryPostgres(db)
	result, err := repo.Create(context.Background(), &model.Inquiry{
		FieldOfStudy:   "Engineering",
		Destination:    "Germany",
		EducationLevel: "Doctorate",
	})

	// No prefix: the handler shows this text verbatim.
	assert.EqualError(t, err, "sql: database is closed")
	assert.Nil(t, result)
}

func TestInquiryPostgres_Create_Concurrent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	repo := NewInquiryPostgres(db)
	now := time.Now().UTC()

	inputs := []*model.Inquiry{
		{FieldOfStudy: "Engineering", Destination: "Canada", EducationLevel: "Graduate"},
		{FieldOfStudy: "Arts & Design", Destination: "Australia", EducationLevel: "Undergraduate"},
	}
	for i, in := range inputs {
		mock.ExpectQuery("INSERT INTO inquiries").
			WithArgs(in.FieldOfStudy, in.Destination, in.EducationLevel).
			WillReturnRows(sqlmock.NewRows(inquiryColumns).
				AddRow(int64(i+1), in.FieldOfStudy, in.Destination, in.EducationLevel, now))
	}

	var wg sync.WaitGroup
	results := make([]*model.Inquiry, len(inputs))
	errs := make([]error, len(inputs))
	for i, in := range inputs {
		wg.Add(1)
		go func(i int, in *model.Inquiry) {
			defer wg.Done()
			results[i], errs[i] = repo.Create(context.Background(), in)
		}(i, in)
	}
	wg.Wait()

	for i, in := range inputs {
		require.NoError(t, errs[i])
		assert.Equal(t, in.FieldOfStudy, results[i].FieldOfStudy)
		assert.Equal(t, in.Destination, results[i].Destination)
		assert.Equal(t, in.EducationLevel, results[i].EducationLevel)
	}
	assert.NotEqual(t, results[0].ID, results[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewInquiryPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM inquiries").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(inquiryColumns).
			AddRow(int64(7), "Health Sciences", "United Kingdom", "Undergraduate", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM inquiries ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, int64(7), res.Items[0].ID)
		assert.Equal(t, "Health Sciences", res.Items[0].FieldOfStudy)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM inquiries").
			WillReturnError(errors.New("count failed"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10})

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryPostgres_ListAfter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInquiryPostgres(db)
	ctx := context.Background()

	t.Run("pages by id after the cursor", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM inquiries WHERE id > \$1 ORDER BY id ASC LIMIT \$2`).
			WithArgs(int64(40), 2).
			WillReturnRows(sqlmock.NewRows(inquiryColumns).
				AddRow(int64(41), "Engineering", "Canada", "Graduate", time.Now()).
				AddRow(int64(43), "Law", "Ireland", "Graduate", time.Now()))

		items, err := repo.ListAfter(ctx, 40, 2)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(41), items[0].ID)
		assert.Equal(t, int64(43), items[1].ID)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM inquiries WHERE id").
			WillReturnError(errors.New("read failed"))

		items, err := repo.ListAfter(ctx, 0, 500)

		assert.EqualError(t, err, "read failed")
		assert.Nil(t, items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
