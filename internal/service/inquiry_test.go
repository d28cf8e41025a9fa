package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"inquiryapi/internal/model"
	"inquiryapi/internal/repository"
	repoMocks "inquiryapi/internal/repository/mocks"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInquiryService_Submit(t *testing.T) {
	valid := SubmitInput{
		FieldOfStudy:   "Computer Science & IT",
		Destination:    "Canada",
		EducationLevel: "Graduate",
	}

	tests := []struct {
		name       string
		input      SubmitInput
		setupMocks func(mRepo *repoMocks.MockInquiryRepository)
		wantFields []string
		wantErrMsg string
	}{
		{
			name:  "happy path",
			input: valid,
			setupMocks: func(mRepo *repoMocks.MockInquiryRepository) {
				mRepo.On("Create", mock.Anything, &model.Inquiry{
					FieldOfStudy:   "Computer Science & IT",
					Destination:    "Canada",
					EducationLevel: "Graduate",
				}).Return(&model.Inquiry{
					ID:             1,
					FieldOfStudy:   "Computer Science & IT",
					Destination:    "Canada",
					EducationLevel: "Graduate",
				}, nil).Once()
			},
		},
		{
			name:       "empty field of study",
			input:      SubmitInput{Destination: "Canada", EducationLevel: "Graduate"},
			wantFields: []string{"fieldOfStudy"},
			wantErrMsg: MsgIncompleteData,
		},
		{
			name:       "all fields missing",
			input:      SubmitInput{},
			wantFields: []string{"fieldOfStudy", "destination", "educationLevel"},
			wantErrMsg: MsgIncompleteData,
		},
		{
			name:       "education level missing",
			input:      SubmitInput{FieldOfStudy: "Engineering", Destination: "Germany"},
			wantFields: []string{"educationLevel"},
			wantErrMsg: MsgIncompleteData,
		},
		{
			name:  "whitespace value is stored as given",
			input: SubmitInput{FieldOfStudy: " ", Destination: "Canada", EducationLevel: "Graduate"},
			setupMocks: func(mRepo *repoMocks.MockInquiryRepository) {
				mRepo.On("Create", mock.Anything, mock.MatchedBy(func(inq *model.Inquiry) bool {
					return inq.FieldOfStudy == " "
				})).Return(&model.Inquiry{ID: 2, FieldOfStudy: " "}, nil).Once()
			},
		},
		{
			name:  "repository error",
			input: valid,
			setupMocks: func(mRepo *repoMocks.MockInquiryRepository) {
				mRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")).Once()
			},
			wantErrMsg: "dial tcp 127.0.0.1:5432: connect: connection refused",
		},
		{
			name:  "postgres error uses server message",
			input: valid,
			setupMocks: func(mRepo *repoMocks.MockInquiryRepository) {
				mRepo.On("Create", mock.Anything, mock.Anything).
					Return(nil, &pgconn.PgError{Code: "42P01", Message: `relation "inquiries" does not exist`}).Once()
			},
			wantErrMsg: `relation "inquiries" does not exist`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockInquiryRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}
			svc := NewInquiryService(mRepo, nil, 0)

			got, err := svc.Submit(context.Background(), tt.input)

			if tt.wantErrMsg == "" {
				require.NoError(t, err)
				assert.NotNil(t, got)
			} else {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.Equal(t, tt.wantErrMsg, err.Error())
			}

			if tt.wantFields != nil {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantFields, verr.Fields)
				mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPersistenceError(t *testing.T) {
	t.Run("nil cause uses fallback", func(t *testing.T) {
		assert.Equal(t, MsgInternalFallback, (&PersistenceError{}).Message())
	})

	t.Run("blank cause uses fallback", func(t *testing.T) {
		assert.Equal(t, MsgInternalFallback, (&PersistenceError{Err: errors.New("  ")}).Message())
	})

	t.Run("unwraps and reports sql state", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23502", Message: "null value in column"}
		err := &PersistenceError{Err: pgErr}

		assert.ErrorIs(t, err, pgErr)
		assert.Equal(t, "23502", err.SQLState())
		assert.Equal(t, "", (&PersistenceError{Err: errors.New("x")}).SQLState())
	})
}

func TestInquiryService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		limit, offset int
		wantQuery     repository.PageQuery
	}{
		{name: "defaults", limit: 0, offset: -5, wantQuery: repository.PageQuery{Limit: 10, Offset: 0}},
		{name: "passes through", limit: 25, offset: 50, wantQuery: repository.PageQuery{Limit: 25, Offset: 50}},
		{name: "caps limit", limit: 1000, offset: 0, wantQuery: repository.PageQuery{Limit: 100, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockInquiryRepository)
			mRepo.On("List", ctx, tt.wantQuery).Return(&repository.PageResult[model.Inquiry]{
				Items: []model.Inquiry{{ID: 1, CreatedAt: time.Now()}},
				Total: 1,
			}, nil).Once()

			svc := NewInquiryService(mRepo, nil, 0)
			res, err := svc.List(ctx, tt.limit, tt.offset)

			require.NoError(t, err)
			assert.Equal(t, 1, res.Total)
			assert.Len(t, res.Items, 1)
			mRepo.AssertExpectations(t)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockInquiryRepository)
		mRepo.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail")).Once()

		svc := NewInquiryService(mRepo, nil, 0)
		res, err := svc.List(ctx, 10, 0)

		assert.EqualError(t, err, "db fail")
		assert.Nil(t, res)
	})
}
