package shopping

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	// FindByUserID finds a user's cart with its items preloaded.
	// Returns ErrNotFound when the user has no cart yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Cart, error)

	// FindOrCreateByUserID finds a user's cart, creating an empty one if
	// missing. Items are preloaded.
	FindOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*Cart, error)

	// UpsertItem adds a line to the cart or increments quantity on the
	// existing line for the same product, atomically.
	UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// SetItemQuantity replaces a line's quantity. Returns ErrNotFound when
	// the line does not exist.
	SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// RemoveItem deletes a line. Removing a missing line is not an error.
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error

	// Clear removes all lines from a cart. Clearing an empty or missing cart
	// succeeds.
	Clear(ctx context.Context, cartID uuid.UUID) error
}
