package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order with its items preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByUserID finds a user's orders, newest first, items preloaded
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Order, error)

	// FindByPaymentIntentID finds the order created for a payment intent
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*Order, error)

	// FindAll finds orders matching the filter. Supported filter key:
	// "status" restricts to one status.
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates an order together with its items
	Save(ctx context.Context, order *Order) error
}
