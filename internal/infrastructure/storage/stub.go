package storage

import (
	"context"
	"fmt"
	"time"

	catalogapp "github.com/Tanner253/BigsAckies-sub001/internal/application/catalog"
)

// StubObjectStorage is a no-op storage for development without credentials.
// Upload URLs point nowhere; catalog flows still work end to end.
type StubObjectStorage struct{}

// NewStubObjectStorage creates a stub storage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{}
}

// GenerateUploadURL returns a placeholder URL
func (s *StubObjectStorage) GenerateUploadURL(_ context.Context, storageKey, _ string) (string, time.Time, error) {
	return fmt.Sprintf("https://storage.invalid/upload/%s", storageKey), time.Now().Add(15 * time.Minute), nil
}

// PublicURL returns a placeholder public URL
func (s *StubObjectStorage) PublicURL(storageKey string) string {
	return fmt.Sprintf("https://storage.invalid/%s", storageKey)
}

// DeleteObject is a no-op
func (s *StubObjectStorage) DeleteObject(context.Context, string) error { return nil }

// ObjectExists always reports true
func (s *StubObjectStorage) ObjectExists(context.Context, string) (bool, error) { return true, nil }

var _ catalogapp.ObjectStorage = (*StubObjectStorage)(nil)
