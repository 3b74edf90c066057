package support

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// MessageRepository defines the interface for support message persistence
type MessageRepository interface {
	// FindByID finds a message by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)

	// FindByUserID finds a user's messages, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Message, error)

	// FindAll finds messages matching the filter. Supported filter key:
	// "status" restricts to one status.
	FindAll(ctx context.Context, filter shared.Filter) ([]Message, error)

	// Count counts messages matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a message
	Save(ctx context.Context, message *Message) error

	// Delete deletes a message
	Delete(ctx context.Context, id uuid.UUID) error
}
