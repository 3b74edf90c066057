package catalog

import (
	"context"
	"time"
)

// ObjectStorage abstracts where product images live. The production
// implementation presigns uploads against an S3-compatible bucket; a stub
// keeps local development working without credentials.
type ObjectStorage interface {
	// GenerateUploadURL returns a presigned PUT URL for the given key and
	// the time at which the URL expires.
	GenerateUploadURL(ctx context.Context, storageKey, contentType string) (string, time.Time, error)

	// PublicURL returns the URL an uploaded object is served from
	PublicURL(storageKey string) string

	// DeleteObject removes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks whether an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}
