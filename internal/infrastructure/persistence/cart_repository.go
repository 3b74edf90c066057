package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shopping"
)

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUserID finds a user's cart with items preloaded
func (r *GormCartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*shopping.Cart, error) {
	var cart shopping.Cart
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// FindOrCreateByUserID finds a user's cart, creating an empty one if missing.
// The unique index on user_id makes concurrent creation safe: the insert is
// a no-op on conflict and the following lookup returns the winner.
func (r *GormCartRepository) FindOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*shopping.Cart, error) {
	cart := shopping.NewCart(userID)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(cart).Error; err != nil {
		return nil, err
	}
	return r.FindByUserID(ctx, userID)
}

// UpsertItem adds a line or increments the existing line's quantity.
// Concurrent adds serialize on the (cart_id, product_id) unique index.
func (r *GormCartRepository) UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	item, err := shopping.NewCartItem(cartID, productID, quantity)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + ?", quantity),
				"updated_at": time.Now(),
			}),
		}).
		Create(item).Error
}

// SetItemQuantity replaces a line's quantity
func (r *GormCartRepository) SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	result := r.db.WithContext(ctx).
		Model(&shopping.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// RemoveItem deletes a line. Removing a missing line is not an error.
func (r *GormCartRepository) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&shopping.CartItem{}, "cart_id = ? AND product_id = ?", cartID, productID).Error
}

// Clear removes all lines from a cart
func (r *GormCartRepository) Clear(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&shopping.CartItem{}, "cart_id = ?", cartID).Error
}

// Ensure GormCartRepository implements CartRepository
var _ shopping.CartRepository = (*GormCartRepository)(nil)
