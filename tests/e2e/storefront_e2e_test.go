// Package e2e exercises the full stack over real HTTP: the demo
// backend on one side, the resilient client and storefront facade on
// the other.
package e2e

import (
	"context"
	"testing"

	"azushop-client/internal/api"
	"azushop-client/internal/domain"
	"azushop-client/internal/notify"
	"azushop-client/internal/state"
	"azushop-client/internal/storefront"
	"azushop-client/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopperJourney(t *testing.T) {
	baseURL := testutil.StartDemoBackend(t)
	client, sessions, events := testutil.NewClientStack(t, baseURL)
	sf := storefront.New(client, sessions, events)
	ctx := context.Background()

	var received []notify.EventType
	sf.Subscribe(func(e notify.Event) { received = append(received, e.Type) })

	// Register a fresh account
	user, err := sf.Register(ctx, "Shopper One", "shopper@example.com", "secret-pass")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
	require.True(t, sessions.IsValid())

	// Browse the catalog
	page, err := sf.Products(ctx, "")
	require.NoError(t, err)
	require.Len(t, page.Products, 6)
	assert.False(t, sf.UsingDemoData())

	headphones, err := sf.Product(ctx, "4")
	require.NoError(t, err)

	// Fill the cart and favorites
	sf.Cart.Add(state.CartItem{
		ProductID: headphones.ID,
		Name:      headphones.Name,
		Price:     headphones.Price,
		Quantity:  1,
	})
	sf.Cart.UpdateQuantity(headphones.ID, 2)
	sf.Favorites.Add(state.FavoriteItem{ProductID: "2", Name: "iPhone 15 Pro Max 256GB"})

	// Check out
	order, err := sf.Checkout(ctx, domain.ShippingAddress{
		Address: "42 Harbor Rd", City: "Faro", PostalCode: "8000-001", Country: "PT",
	}, "card")
	require.NoError(t, err)
	assert.InDelta(t, 2*headphones.Price, order.TotalPrice, 0.001)
	assert.Empty(t, sf.Cart.Items())

	// Pay and confirm it shows up in order history
	_, err = client.Orders().Pay(ctx, domain.PaymentRequest{
		CallbackURL: "http://localhost:3000/orders",
		Order:       order.ID,
	})
	require.NoError(t, err)

	mine, err := client.Orders().Mine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.True(t, mine[0].IsPaid)

	// Sign out
	sf.Logout(ctx)
	assert.False(t, sessions.IsValid())
	assert.Empty(t, sf.Favorites.Items())

	assert.Equal(t, []notify.EventType{notify.EventLoginSuccess, notify.EventLogout}, received)
}

func TestAdminJourney(t *testing.T) {
	baseURL := testutil.StartDemoBackend(t)
	client, sessions, _ := testutil.NewClientStack(t, baseURL)
	ctx := context.Background()

	_, err := client.Users().Login(ctx, api.LoginInput{
		Email:    "admin@azushop.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	require.True(t, sessions.IsValid())

	// Extend the catalog
	category, err := client.Categories().Create(ctx, api.CategoryInput{Name: "Wearables"})
	require.NoError(t, err)

	created, err := client.Products().Create(ctx, api.ProductForm{
		Name:         "Apple Watch Ultra 2",
		Price:        799.99,
		Brand:        "Apple",
		Category:     category.ID,
		CountInStock: 30,
		Description:  "Rugged smartwatch for endurance athletes.",
		ImageName:    "watch.jpg",
		Image:        []byte("fake-image-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Wearables", created.Category.Name)

	// The new product is visible to shoppers
	fresh, err := client.Products().New(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, fresh)
	assert.Equal(t, created.ID, fresh[0].ID)

	// Dashboard aggregates
	count, err := client.Orders().TotalOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count.TotalOrders)

	sales, err := client.Orders().TotalSales(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2399.99, sales.TotalSales, 0.001)

	// Account administration
	users, err := client.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	isAdmin := true
	promoted, err := client.Users().Update(ctx, "1", api.UpdateUserInput{IsAdmin: &isAdmin})
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	// Clean up the catalog
	require.NoError(t, client.Products().Delete(ctx, created.ID))
	require.NoError(t, client.Categories().Delete(ctx, category.ID))
}
