package shopping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItem(t *testing.T) {
	cartID := uuid.New()
	productID := uuid.New()

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewCartItem(cartID, productID, 0)
		assert.Error(t, err)
		_, err = NewCartItem(cartID, productID, -1)
		assert.Error(t, err)
	})

	t.Run("add quantity increments", func(t *testing.T) {
		item, err := NewCartItem(cartID, productID, 2)
		require.NoError(t, err)
		require.NoError(t, item.AddQuantity(3))
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("set quantity replaces", func(t *testing.T) {
		item, err := NewCartItem(cartID, productID, 2)
		require.NoError(t, err)
		require.NoError(t, item.SetQuantity(7))
		assert.Equal(t, 7, item.Quantity)
		assert.Error(t, item.SetQuantity(0))
	})
}

func TestCartLookup(t *testing.T) {
	cart := NewCart(uuid.New())
	assert.True(t, cart.IsEmpty())

	productID := uuid.New()
	item, err := NewCartItem(cart.ID, productID, 1)
	require.NoError(t, err)
	cart.Items = append(cart.Items, *item)

	assert.False(t, cart.IsEmpty())
	require.NotNil(t, cart.ItemFor(productID))
	assert.Nil(t, cart.ItemFor(uuid.New()))
}
