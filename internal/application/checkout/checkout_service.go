// Package checkout implements the two-phase checkout flow: a payment
// intent is created against the cart's current total, then the order is
// placed in a single database transaction that freezes prices and
// decrements stock.
package checkout

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/catalog"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/order"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shopping"
)

// CheckoutService orchestrates payment intents and order placement
type CheckoutService struct {
	txScope     TransactionScope
	cartRepo    shopping.CartRepository
	productRepo catalog.ProductRepository
	provider    PaymentProvider
	currency    string
	logger      *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	txScope TransactionScope,
	cartRepo shopping.CartRepository,
	productRepo catalog.ProductRepository,
	provider PaymentProvider,
	currency string,
	logger *zap.Logger,
) *CheckoutService {
	if currency == "" {
		currency = "usd"
	}
	return &CheckoutService{
		txScope:     txScope,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		provider:    provider,
		currency:    currency,
		logger:      logger,
	}
}

// CreatePaymentIntent registers a pending payment for the cart's current
// total. The cart is not modified; stock is not reserved.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, userID uuid.UUID) (*PaymentIntentResponse, error) {
	cart, err := s.loadNonEmptyCart(ctx, s.cartRepo, userID)
	if err != nil {
		return nil, err
	}

	_, total, err := s.priceCart(ctx, s.productRepo, cart)
	if err != nil {
		return nil, err
	}

	intent, err := s.provider.CreateIntent(ctx, total, s.currency, map[string]string{
		"user_id": userID.String(),
		"cart_id": cart.ID.String(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment intent created",
		zap.String("user_id", userID.String()),
		zap.String("payment_intent_id", intent.ID),
		zap.Int64("amount_cents", intent.AmountCents))

	return &PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     intent.AmountCents,
		AmountFormatted: shared.FormatCents(intent.AmountCents),
		Currency:        intent.Currency,
	}, nil
}

// CreateOrder places an order from the user's cart. The total is recomputed
// server side from current product prices, stock is decremented with an
// availability guard, and the whole placement commits or rolls back as one
// transaction. The cart is cleared after a successful commit; a failed clear
// is logged but does not undo the order.
func (s *CheckoutService) CreateOrder(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	var placed *order.Order

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		cart, err := s.loadNonEmptyCart(ctx, repos.CartRepo(), userID)
		if err != nil {
			return err
		}

		lines, _, err := s.priceCart(ctx, repos.ProductRepo(), cart)
		if err != nil {
			return err
		}

		for _, line := range lines {
			if err := repos.ProductRepo().DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}

		o, err := order.NewOrder(userID, req.ShippingAddress, req.PaymentIntentID, lines)
		if err != nil {
			return err
		}
		if err := repos.OrderRepo().Save(ctx, o); err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The order exists regardless of whether the cart clear succeeds
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		err = s.cartRepo.Clear(ctx, cart.ID)
	}
	if err != nil {
		s.logger.Warn("Failed to clear cart after order placement",
			zap.String("user_id", userID.String()),
			zap.String("order_id", placed.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("Order placed",
		zap.String("user_id", userID.String()),
		zap.String("order_id", placed.ID.String()),
		zap.Int64("total_cents", placed.TotalCents))

	resp := ToOrderResponse(placed)
	return &resp, nil
}

// loadNonEmptyCart returns the user's cart or ErrEmptyCart when there is no
// cart or no lines.
func (s *CheckoutService) loadNonEmptyCart(ctx context.Context, repo shopping.CartRepository, userID uuid.UUID) (*shopping.Cart, error) {
	cart, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrEmptyCart
		}
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}
	return cart, nil
}

// priceCart turns cart lines into order lines at current product prices and
// returns the total in cents. A line whose product no longer exists fails
// the whole pricing.
func (s *CheckoutService) priceCart(ctx context.Context, repo catalog.ProductRepository, cart *shopping.Cart) ([]order.Line, int64, error) {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	lines := make([]order.Line, 0, len(cart.Items))
	var total int64
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, 0, shared.NewDomainError("PRODUCT_UNAVAILABLE", "A product in the cart is no longer available")
		}
		lines = append(lines, order.Line{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			PriceCents:  product.PriceCents,
		})
		total += int64(item.Quantity) * product.PriceCents
	}
	return lines, total, nil
}
