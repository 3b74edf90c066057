package persistence

import (
	"context"

	"gorm.io/gorm"

	appcheckout "github.com/Tanner253/BigsAckies-sub001/internal/application/checkout"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/catalog"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/order"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shopping"
)

// GormCheckoutTransactionScope implements the checkout TransactionScope
// using GORM transactions.
type GormCheckoutTransactionScope struct {
	db *gorm.DB
}

// NewGormCheckoutTransactionScope creates a new GormCheckoutTransactionScope
func NewGormCheckoutTransactionScope(db *gorm.DB) *GormCheckoutTransactionScope {
	return &GormCheckoutTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormCheckoutTransactionScope) Execute(ctx context.Context, fn func(repos appcheckout.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCheckoutRepositories{tx: tx})
	})
}

type gormCheckoutRepositories struct {
	tx *gorm.DB
}

// CartRepo returns the cart repository scoped to the current transaction
func (r *gormCheckoutRepositories) CartRepo() shopping.CartRepository {
	return NewGormCartRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormCheckoutRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// OrderRepo returns the order repository scoped to the current transaction
func (r *gormCheckoutRepositories) OrderRepo() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

var _ appcheckout.TransactionScope = (*GormCheckoutTransactionScope)(nil)
var _ appcheckout.TransactionalRepositories = (*gormCheckoutRepositories)(nil)
