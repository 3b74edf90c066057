package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shopping"
)

func newCartDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&shopping.Cart{}, &shopping.CartItem{}))
	return db
}

func TestGormCartRepository_FindByUserID(t *testing.T) {
	t.Run("missing cart maps to not found", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		userID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "carts" WHERE user_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

		cart, err := repo.FindByUserID(context.Background(), userID)

		assert.Nil(t, cart)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCartRepository_UpsertItem(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		db, _, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		err := repo.UpsertItem(context.Background(), uuid.New(), uuid.New(), 0)
		assert.Error(t, err)
	})

	t.Run("inserts with conflict increment", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()
		productID := uuid.New()
		mock.ExpectExec(`INSERT INTO "cart_items" .* ON CONFLICT \("cart_id","product_id"\) DO UPDATE SET .*`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpsertItem(context.Background(), cartID, productID, 2)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("double add keeps one line with summed quantity", func(t *testing.T) {
		db := newCartDB(t)
		repo := NewGormCartRepository(db)

		cart := shopping.NewCart(uuid.New())
		require.NoError(t, db.Create(cart).Error)
		productID := uuid.New()

		require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, productID, 2))
		require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, productID, 3))

		var items []shopping.CartItem
		require.NoError(t, db.Where("cart_id = ?", cart.ID).Find(&items).Error)
		require.Len(t, items, 1)
		assert.Equal(t, productID, items[0].ProductID)
		assert.Equal(t, 5, items[0].Quantity)
	})
}

func TestGormCartRepository_SetItemQuantity(t *testing.T) {
	t.Run("missing line maps to not found", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()
		productID := uuid.New()
		mock.ExpectExec(`UPDATE "cart_items" SET .* WHERE cart_id = .* AND product_id = .*`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetItemQuantity(context.Background(), cartID, productID, 3)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCartRepository_Clear(t *testing.T) {
	t.Run("clearing an empty cart succeeds", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()
		mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Clear(context.Background(), cartID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
