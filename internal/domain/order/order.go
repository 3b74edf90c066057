package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// Status represents the lifecycle state of an order
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// legalTransitions maps each status to the statuses it may move to.
// Cancellation is only possible before shipment.
var legalTransitions = map[Status][]Status{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// IsValid reports whether the status is a known value
func (s Status) IsValid() bool {
	_, ok := legalTransitions[s]
	return ok
}

// Order is a placed purchase. Everything except Status is immutable after
// creation; item prices are frozen copies taken at checkout.
type Order struct {
	shared.BaseEntity
	UserID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	TotalCents      int64       `gorm:"not null" json:"total_cents"`
	Status          Status      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ShippingAddress string      `gorm:"type:text;not null" json:"shipping_address"`
	PaymentIntentID string      `gorm:"type:varchar(255)" json:"payment_intent_id"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a frozen line of a placed order. PriceCentsAtTime and
// ProductName are snapshots taken when the order was created and are never
// re-derived from the product.
type OrderItem struct {
	shared.BaseEntity
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	ProductName      string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity         int       `gorm:"not null" json:"quantity"`
	PriceCentsAtTime int64     `gorm:"not null" json:"price_cents_at_time"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Line captures one product at checkout time
type Line struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	PriceCents  int64
}

// NewOrder builds a pending order from checkout lines. The total is computed
// from the lines in integer cents.
func NewOrder(userID uuid.UUID, shippingAddress, paymentIntentID string, lines []Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if shippingAddress == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shipping address is required")
	}

	o := &Order{
		BaseEntity:      shared.NewBaseEntity(),
		UserID:          userID,
		Status:          StatusPending,
		ShippingAddress: shippingAddress,
		PaymentIntentID: paymentIntentID,
	}

	var total int64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		total += int64(line.Quantity) * line.PriceCents
		o.Items = append(o.Items, OrderItem{
			BaseEntity:       shared.NewBaseEntity(),
			OrderID:          o.ID,
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			Quantity:         line.Quantity,
			PriceCentsAtTime: line.PriceCents,
		})
	}
	o.TotalCents = total
	return o, nil
}

// TransitionTo moves the order to a new status, enforcing legal transitions
func (o *Order) TransitionTo(next Status) error {
	if !next.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	for _, allowed := range legalTransitions[o.Status] {
		if allowed == next {
			o.Status = next
			o.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.ErrInvalidState
}

// MarkPaid records a successful payment
func (o *Order) MarkPaid() error {
	return o.TransitionTo(StatusPaid)
}
