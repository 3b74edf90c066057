package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/order"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*order.Order, error) {
	args := m.Called(ctx, paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func newOrderService() (*OrderService, *MockOrderRepository) {
	repo := new(MockOrderRepository)
	return NewOrderService(repo, zap.NewNop()), repo
}

func placedOrder(t *testing.T, userID uuid.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(userID, "1 Reptile Way", "pi_test", []order.Line{
		{ProductID: uuid.New(), ProductName: "Ackie Monitor", Quantity: 1, PriceCents: 24999},
	})
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestOrderService_GetMine(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can read the order", func(t *testing.T) {
		service, repo := newOrderService()
		userID := uuid.New()
		o := placedOrder(t, userID)
		repo.On("FindByID", ctx, o.ID).Return(o, nil)

		resp, err := service.GetMine(ctx, userID, o.ID)

		assert.NoError(t, err)
		assert.Equal(t, o.ID, resp.ID)
		assert.Equal(t, int64(24999), resp.TotalCents)
	})

	t.Run("someone else's order reads as not found", func(t *testing.T) {
		service, repo := newOrderService()
		o := placedOrder(t, uuid.New())
		repo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := service.GetMine(ctx, uuid.New(), o.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("missing order", func(t *testing.T) {
		service, repo := newOrderService()
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.GetMine(ctx, uuid.New(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderService_ListMine(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user's orders", func(t *testing.T) {
		service, repo := newOrderService()
		userID := uuid.New()
		o1 := placedOrder(t, userID)
		o2 := placedOrder(t, userID)
		repo.On("FindByUserID", ctx, userID).Return([]order.Order{*o2, *o1}, nil)

		responses, err := service.ListMine(ctx, userID)

		assert.NoError(t, err)
		assert.Len(t, responses, 2)
	})

	t.Run("no orders yields an empty list", func(t *testing.T) {
		service, repo := newOrderService()
		userID := uuid.New()
		repo.On("FindByUserID", ctx, userID).Return([]order.Order{}, nil)

		responses, err := service.ListMine(ctx, userID)

		assert.NoError(t, err)
		assert.NotNil(t, responses)
		assert.Empty(t, responses)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("legal transition", func(t *testing.T) {
		service, repo := newOrderService()
		o := placedOrder(t, uuid.New())
		repo.On("FindByID", ctx, o.ID).Return(o, nil)
		repo.On("Save", ctx, o).Return(nil)

		resp, err := service.UpdateStatus(ctx, o.ID, UpdateStatusRequest{Status: order.StatusPaid})

		assert.NoError(t, err)
		assert.Equal(t, order.StatusPaid, resp.Status)
	})

	t.Run("illegal transition", func(t *testing.T) {
		service, repo := newOrderService()
		o := placedOrder(t, uuid.New())
		repo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := service.UpdateStatus(ctx, o.ID, UpdateStatusRequest{Status: order.StatusDelivered})

		assert.ErrorIs(t, err, shared.ErrInvalidState)
		repo.AssertNotCalled(t, "Save", ctx, o)
	})

	t.Run("unknown status", func(t *testing.T) {
		service, repo := newOrderService()
		o := placedOrder(t, uuid.New())
		repo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := service.UpdateStatus(ctx, o.ID, UpdateStatusRequest{Status: "refunded"})

		assert.Error(t, err)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by status", func(t *testing.T) {
		service, repo := newOrderService()
		o := placedOrder(t, uuid.New())
		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["status"] == "pending"
		})).Return([]order.Order{*o}, nil)
		repo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

		result, err := service.List(ctx, ListFilter{Status: "pending"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		assert.Len(t, result.Items, 1)
	})

	t.Run("all returns every status", func(t *testing.T) {
		service, repo := newOrderService()
		o := placedOrder(t, uuid.New())
		repo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			_, filtered := f.Filters["status"]
			return !filtered
		})).Return([]order.Order{*o}, nil)
		repo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

		result, err := service.List(ctx, ListFilter{Status: "all"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		assert.Len(t, result.Items, 1)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		service, _ := newOrderService()

		_, err := service.List(ctx, ListFilter{Status: "bogus"})

		assert.Error(t, err)
	})
}
