package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/order"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// PaymentIntentResponse carries the provider handle back to the storefront.
// The client secret is what the frontend uses to collect payment.
type PaymentIntentResponse struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	AmountCents     int64  `json:"amount_cents"`
	AmountFormatted string `json:"amount_formatted"`
	Currency        string `json:"currency"`
}

// CreateOrderRequest contains the input for placing an order
type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	PaymentIntentID string `json:"payment_intent_id"`
}

// OrderItemResponse is a frozen order line
type OrderItemResponse struct {
	ProductID        uuid.UUID `json:"product_id"`
	ProductName      string    `json:"product_name"`
	Quantity         int       `json:"quantity"`
	PriceCentsAtTime int64     `json:"price_cents_at_time"`
}

// OrderResponse is the API representation of a placed order
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	TotalCents      int64               `json:"total_cents"`
	TotalFormatted  string              `json:"total_formatted"`
	Status          order.Status        `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	PaymentIntentID string              `json:"payment_intent_id,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
}

// ToOrderResponse converts an order entity to its API representation
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:        item.ProductID,
			ProductName:      item.ProductName,
			Quantity:         item.Quantity,
			PriceCentsAtTime: item.PriceCentsAtTime,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		TotalCents:      o.TotalCents,
		TotalFormatted:  shared.FormatCents(o.TotalCents),
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		PaymentIntentID: o.PaymentIntentID,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}
