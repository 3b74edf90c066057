package shopping

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// Cart holds a user's pending purchases. Each user has at most one cart,
// created lazily on first use.
type Cart struct {
	shared.BaseEntity
	UserID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// CartItem is a line in a cart. A cart holds at most one line per product;
// re-adding a product increments the existing line's quantity.
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product,priority:1" json:"cart_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product,priority:2" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCart creates an empty cart for a user
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
	}
}

// NewCartItem creates a cart line
func NewCartItem(cartID, productID uuid.UUID, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

// AddQuantity increments the line quantity
func (i *CartItem) AddQuantity(delta int) error {
	if delta <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	i.Quantity += delta
	i.UpdatedAt = time.Now()
	return nil
}

// SetQuantity replaces the line quantity
func (i *CartItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemFor returns the line for a product, or nil
func (c *Cart) ItemFor(productID uuid.UUID) *CartItem {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			return &c.Items[idx]
		}
	}
	return nil
}
