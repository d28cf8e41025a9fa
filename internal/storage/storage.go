// Package storage writes inquiry exports to S3-compatible object storage.
package storage

import (
	"context"
	"io"
	"time"
)

// Object is a file to upload. Size may be -1 when unknown.
type Object struct {
	Key         string
	Body        io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// Stored describes an uploaded object.
type Stored struct {
	Key  string
	Size int64
	ETag string
}

// Storage is the export destination.
type Storage interface {
	Put(ctx context.Context, obj Object) (Stored, error)
	// PresignGet returns a download link valid for expiry that serves the object as an attachment.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
