package checkout

import (
	"context"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/catalog"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/order"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shopping"
)

// TransactionScope provides transactional access to the repositories order
// creation touches. Stock decrement, order insert and item inserts commit or
// roll back as one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to repositories sharing one
// database transaction.
type TransactionalRepositories interface {
	CartRepo() shopping.CartRepository
	ProductRepo() catalog.ProductRepository
	OrderRepo() order.OrderRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful in tests where the backing store is a single in-memory database.
type NoOpTransactionScope struct {
	cartRepo    shopping.CartRepository
	productRepo catalog.ProductRepository
	orderRepo   order.OrderRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	cartRepo shopping.CartRepository,
	productRepo catalog.ProductRepository,
	orderRepo order.OrderRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Execute runs the function without transaction boundaries
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CartRepo returns the cart repository
func (s *NoOpTransactionScope) CartRepo() shopping.CartRepository { return s.cartRepo }

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository { return s.productRepo }

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() order.OrderRepository { return s.orderRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
