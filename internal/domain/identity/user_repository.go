package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (emails are stored lowercased)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks whether a user with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByName checks whether a user with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// FindAll finds users matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// Count counts users matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete deletes a user
	Delete(ctx context.Context, id uuid.UUID) error
}
