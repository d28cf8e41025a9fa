package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"inquiryapi/internal/model"
	"inquiryapi/internal/repository"
	"inquiryapi/internal/storage"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// SubmitInput is the body of a program search form submission.
// Only presence is checked; values are stored exactly as received.
type SubmitInput struct {
	FieldOfStudy   string `json:"fieldOfStudy" validate:"required"`
	Destination    string `json:"destination" validate:"required"`
	EducationLevel string `json:"educationLevel" validate:"required"`
}

// InquiryListResult is the service-level DTO for paginated inquiries.
type InquiryListResult struct {
	Items []model.Inquiry `json:"data"`
	Total int             `json:"total"`
}

// InquiryService defines the use cases for lead-capture inquiries.
type InquiryService interface {
	// Submit validates the three required fields and writes exactly one row.
	// It returns *ValidationError without touching the repository, or *PersistenceError on database failure.
	Submit(ctx context.Context, in SubmitInput) (*model.Inquiry, error)

	// List returns inquiries newest first using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*InquiryListResult, error)

	// Export writes all inquiries as CSV to object storage and returns a download link.
	Export(ctx context.Context) (*ExportResult, error)
}

type inquiryService struct {
	repo         repository.InquiryRepository
	store        storage.Storage
	exportExpiry time.Duration
	validate     *validator.Validate
	tracer       trace.Tracer
	now          func() time.Time
}

// NewInquiryService constructs a new InquiryService. store may be nil, which disables Export.
func NewInquiryService(repo repository.InquiryRepository, store storage.Storage, exportExpiry time.Duration) InquiryService {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	if exportExpiry <= 0 {
		exportExpiry = 15 * time.Minute
	}

	return &inquiryService{
		repo:         repo,
		store:        store,
		exportExpiry: exportExpiry,
		validate:     v,
		tracer:       otel.Tracer("inquiryapi/internal/service"),
		now:          time.Now,
	}
}

func (s *inquiryService) Submit(ctx context.Context, in SubmitInput) (*model.Inquiry, error) {
	ctx, span := s.tracer.Start(ctx, "InquiryService.Submit", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if err := s.validateInput(in); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("inquiry.destination", in.Destination))

	stored, err := s.repo.Create(ctx, &model.Inquiry{
		FieldOfStudy:   in.FieldOfStudy,
		Destination:    in.Destination,
		EducationLevel: in.EducationLevel,
	})
	if err != nil {
		perr := &PersistenceError{Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, perr.Message())
		return nil, perr
	}

	span.SetAttributes(attribute.Int64("inquiry.id", stored.ID))
	return stored, nil
}

func (s *inquiryService) validateInput(in SubmitInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// List returns paginated inquiries without exposing repository types.
func (s *inquiryService) List(ctx context.Context, limit, offset int) (*InquiryListResult, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &InquiryListResult{Items: res.Items, Total: res.Total}, nil
}
