package shopping

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/catalog"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shopping"
)

// CartService handles per-user cart operations. Stock is only advisory
// here; it is enforced atomically at checkout.
type CartService struct {
	cartRepo    shopping.CartRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	cartRepo shopping.CartRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get returns the user's cart with product details and the running total.
// Users without a cart get an empty one.
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp, err := s.project(ctx, cart)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AddItem adds a product to the user's cart. Adding a product already in
// the cart increments the existing line's quantity.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	if req.Quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpsertItem(ctx, cart.ID, req.ProductID, req.Quantity); err != nil {
		return nil, err
	}

	s.logger.Debug("Cart item added",
		zap.String("user_id", userID.String()),
		zap.String("product_id", req.ProductID.String()),
		zap.Int("quantity", req.Quantity))

	return s.reload(ctx, userID)
}

// UpdateItem replaces a line's quantity. Quantity zero removes the line.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, req UpdateItemRequest) (*CartResponse, error) {
	if req.Quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Quantity == 0 {
		if err := s.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
			return nil, err
		}
	} else {
		if err := s.cartRepo.SetItemQuantity(ctx, cart.ID, productID, req.Quantity); err != nil {
			return nil, err
		}
	}

	return s.reload(ctx, userID)
}

// RemoveItem deletes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}

	return s.reload(ctx, userID)
}

// Clear empties the cart. Clearing an already-empty cart succeeds.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.cartRepo.FindOrCreateByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.cartRepo.Clear(ctx, cart.ID)
}

func (s *CartService) reload(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, cart)
}

func (s *CartService) project(ctx context.Context, cart *shopping.Cart) (*CartResponse, error) {
	if cart.IsEmpty() {
		resp := toCartResponse(cart, nil)
		return &resp, nil
	}

	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	resp := toCartResponse(cart, products)
	return &resp, nil
}
