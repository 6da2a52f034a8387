package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func macbook() CartItem {
	return CartItem{ProductID: "1", Name: "MacBook Pro", Price: 2399.99, Quantity: 1}
}

func iphone() CartItem {
	return CartItem{ProductID: "2", Name: "iPhone 15", Price: 1199.99, Quantity: 2}
}

func TestCart_AddMergesDuplicates(t *testing.T) {
	cart := NewCart()

	cart.Add(macbook())
	cart.Add(macbook())

	items := cart.Items()
	require.Len(t, items, 1, "duplicate add must merge, not create a second entry")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_InsertionOrderIsPreserved(t *testing.T) {
	cart := NewCart()

	cart.Add(iphone())
	cart.Add(macbook())
	cart.Add(iphone()) // merge must not move the item

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ProductID)
	assert.Equal(t, "1", items[1].ProductID)
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("sets_new_quantity", func(t *testing.T) {
		cart := NewCart()
		cart.Add(macbook())

		cart.UpdateQuantity("1", 5)
		assert.Equal(t, 5, cart.Items()[0].Quantity)
	})

	t.Run("zero_removes_entry", func(t *testing.T) {
		cart := NewCart()
		cart.Add(macbook())

		cart.UpdateQuantity("1", 0)
		assert.Empty(t, cart.Items())
	})

	t.Run("negative_removes_entry", func(t *testing.T) {
		cart := NewCart()
		cart.Add(macbook())

		cart.UpdateQuantity("1", -3)
		assert.Empty(t, cart.Items())
	})

	t.Run("unknown_id_is_ignored", func(t *testing.T) {
		cart := NewCart()
		cart.UpdateQuantity("ghost", 4)
		assert.Empty(t, cart.Items())
	})
}

func TestCart_RemoveAndClear(t *testing.T) {
	cart := NewCart()
	cart.Add(macbook())
	cart.Add(iphone())

	cart.Remove("1")
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "2", cart.Items()[0].ProductID)

	cart.Remove("ghost")
	assert.Len(t, cart.Items(), 1)

	cart.Clear()
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())
}

func TestCart_TotalAndCount(t *testing.T) {
	cart := NewCart()
	cart.Add(macbook())
	cart.Add(iphone())

	assert.InDelta(t, 2399.99+2*1199.99, cart.Total(), 0.001)
	assert.Equal(t, 3, cart.Count())
}

func TestCart_AddNonPositiveQuantityDefaultsToOne(t *testing.T) {
	cart := NewCart()
	cart.Add(CartItem{ProductID: "1", Name: "MacBook Pro", Price: 2399.99, Quantity: 0})

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
