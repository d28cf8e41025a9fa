package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"inquiryapi/internal/storage"
)

const exportPageSize = 500

var exportHeader = []string{"id", "field_of_study", "destination", "education_level", "created_at"}

// ExportResult describes a CSV snapshot written to object storage.
type ExportResult struct {
	Key       string    `json:"key"`
	Rows      int       `json:"rows"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *inquiryService) Export(ctx context.Context) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrExportUnavailable
	}

	ctx, span := s.tracer.Start(ctx, "InquiryService.Export")
	defer span.End()

	res, err := s.export(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("export.rows", res.Rows))
	return res, nil
}

func (s *inquiryService) export(ctx context.Context) (*ExportResult, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	rows := 0
	var lastID int64
	for {
		page, err := s.repo.ListAfter(ctx, lastID, exportPageSize)
		if err != nil {
			return nil, fmt.Errorf("list inquiries: %w", err)
		}
		for _, inq := range page {
			rec := []string{
				strconv.FormatInt(inq.ID, 10),
				inq.FieldOfStudy,
				inq.Destination,
				inq.EducationLevel,
				inq.CreatedAt.UTC().Format(time.RFC3339),
			}
			if err := w.Write(rec); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
		}
		rows += len(page)
		if len(page) < exportPageSize {
			break
		}
		lastID = page[len(page)-1].ID
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	now := s.now().UTC()
	key := fmt.Sprintf("exports/inquiries-%s.csv", now.Format("20060102T150405Z"))
	info, err := s.store.Put(ctx, storage.Object{
		Key:         key,
		Body:        &buf,
		Size:        int64(buf.Len()),
		ContentType: "text/csv",
		Metadata: map[string]string{
			"rows": strconv.Itoa(rows),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.exportExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}

	return &ExportResult{
		Key:       info.Key,
		Rows:      rows,
		URL:       url,
		ExpiresAt: now.Add(s.exportExpiry),
	}, nil
}
