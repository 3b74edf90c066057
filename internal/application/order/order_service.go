package order

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/application/checkout"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/order"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// OrderService handles order history and administrative order management
type OrderService struct {
	orderRepo order.OrderRepository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, logger: logger}
}

// ListFilter contains filtering options for the admin order list
type ListFilter struct {
	Page     int
	PageSize int
	Status   string
}

// UpdateStatusRequest contains the input for an admin status change
type UpdateStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

// ListMine returns the user's orders, newest first
func (s *OrderService) ListMine(ctx context.Context, userID uuid.UUID) ([]checkout.OrderResponse, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]checkout.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, checkout.ToOrderResponse(&orders[i]))
	}
	return responses, nil
}

// GetMine returns one of the user's orders. Another user's order is reported
// as not found, never as forbidden, so order IDs cannot be probed.
func (s *OrderService) GetMine(ctx context.Context, userID, orderID uuid.UUID) (*checkout.OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrNotFound
	}

	resp := checkout.ToOrderResponse(o)
	return &resp, nil
}

// List returns orders across all users for administrators
func (s *OrderService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[checkout.OrderResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	// "all" means no status filter
	if status := strings.ToLower(filter.Status); status != "" && status != "all" {
		if !order.Status(status).IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
		}
		domainFilter.Filters["status"] = status
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]checkout.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, checkout.ToOrderResponse(&orders[i]))
	}

	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Get returns any order by ID for administrators
func (s *OrderService) Get(ctx context.Context, orderID uuid.UUID) (*checkout.OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resp := checkout.ToOrderResponse(o)
	return &resp, nil
}

// UpdateStatus moves an order through its lifecycle, enforcing legal
// transitions.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req UpdateStatusRequest) (*checkout.OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := o.TransitionTo(req.Status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(req.Status)))

	resp := checkout.ToOrderResponse(o)
	return &resp, nil
}
