package demoserver_test

import (
	"context"
	"testing"
	"time"

	"azushop-client/internal/api"
	"azushop-client/internal/demoserver"
	"azushop-client/internal/domain"
	"azushop-client/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) (*api.Client, domain.SessionStore) {
	t.Helper()
	client, sessions, _ := testutil.NewClientStack(t, baseURL)
	return client, sessions
}

func TestDemoServer_LoginProfileLogout(t *testing.T) {
	baseURL := testutil.StartDemoBackend(t)
	client, sessions := newTestClient(t, baseURL)
	ctx := context.Background()

	user, err := client.Users().Login(ctx, api.LoginInput{
		Email:    "admin@azushop.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Admin User", user.Username)
	assert.True(t, user.IsAdmin)
	assert.True(t, sessions.IsValid())

	profile, err := client.Users().Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin@azushop.com", profile.Email)

	client.Users().Logout(ctx)
	assert.False(t, sessions.IsValid())
}

func TestDemoServer_WrongPasswordIsUnauthorized(t *testing.T) {
	baseURL := testutil.StartDemoBackend(t)
	client, sessions := newTestClient(t, baseURL)

	_, err := client.Users().Login(context.Background(), api.LoginInput{
		Email:    "admin@azushop.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, sessions.IsValid())
}

func TestDemoServer_RegisterEstablishesSession(t *testing.T) {
	baseURL := testutil.StartDemoBackend(t)
	client, sessions := newTestClient(t, baseURL)
	ctx := context.Background()

	user, err := client.Users().Register(ctx, api.RegisterInput{
		Username: "Jane Roe",
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.True(t, sessions.IsValid())

	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		_, err := client.Users().Register(ctx, api.RegisterInput{
			Username: "Jane Again",
			Email:    "jane@example.com",
			Password: "hunter22",
		})
		require.Error(t, err)
	})
}

func TestDemoServer_CatalogIsServed(t *testing.T) {
	baseURL := testutil.StartDemoBackend(t)
	client, _ := newTestClient(t, baseURL)
	ctx := context.Background()

	t.Run("paginated_listing", func(t *testing.T) {
		page, err := client.Products().List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, page.Products, 6)
		assert.Equal(t, 1, page.Page)
		assert.False(t, page.HasMore)
	})

	t.Run("keyword_filter", func(t *testing.T) {
		page, err := client.Products().List(ctx, "macbook")
		require.NoError(t, err)
		require.Len(t, page.Products, 1)
		assert.Equal(t, "1", page.Products[0].ID)
	})

	t.Run("single_product", func(t *testing.T) {
		product, err := client.Products().Get(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, "Canon EOS R5 Mirrorless Camera", product.Name)
		assert.Zero(t, product.CountInStock)
	})

	t.Run("missing_product_is_an_api_error", func(t *testing.T) {
		_, err := client.Products().Get(ctx, "no-such-id")
		require.Error(t, err)
	})

	t.Run("top_products_are_sorted_by_rating", func(t *testing.T) {
		top, err := client.Products().Top(ctx)
		require.NoError(t, err)
		require.Len(t, top, 4)
		assert.Equal(t, "iPhone 15 Pro Max 256GB", top[0].Name)
	})

	t.Run("category_and_price_filter", func(t *testing.T) {
		products, err := client.Products().Filter(ctx, domain.ProductFilter{
			Checked: []string{"laptops"},
			Radio:   []float64{0, 2000},
		})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Dell XPS 13 Laptop", products[0].Name)
	})

	t.Run("categories", func(t *testing.T) {
		categories, err := client.Categories().List(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 4)
	})
}

func TestDemoServer_AdminGuards(t *testing.T) {
	baseURL := testutil.StartDemoBackend(t)
	ctx := context.Background()

	client, _ := newTestClient(t, baseURL)
	_, err := client.Users().Login(ctx, api.LoginInput{
		Email:    "john@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	t.Run("regular_user_cannot_list_accounts", func(t *testing.T) {
		_, err := client.Users().List(ctx)
		require.ErrorIs(t, err, api.ErrUnauthorized)
	})

	t.Run("regular_user_can_review", func(t *testing.T) {
		// Re-login since the 401 above cleared the session
		_, err := client.Users().Login(ctx, api.LoginInput{
			Email:    "john@example.com",
			Password: "password",
		})
		require.NoError(t, err)

		err = client.Products().AddReview(ctx, "4", domain.Review{Rating: 5, Comment: "superb"})
		require.NoError(t, err)

		product, err := client.Products().Get(ctx, "4")
		require.NoError(t, err)
		require.Len(t, product.Reviews, 1)
		assert.Equal(t, "John Doe", product.Reviews[0].User)
		assert.Equal(t, 1, product.NumReviews)
	})
}

func TestDemoServer_OrderLifecycle(t *testing.T) {
	baseURL := testutil.StartDemoBackend(t)
	ctx := context.Background()

	client, _ := newTestClient(t, baseURL)
	_, err := client.Users().Login(ctx, api.LoginInput{
		Email:    "admin@azushop.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	order, err := client.Orders().Create(ctx, api.CreateOrderInput{
		OrderItems: []domain.OrderItem{
			{Product: "4", Name: "Sony WH-1000XM5 Wireless Headphones", Price: 349.99, Qty: 2},
		},
		ShippingAddress: domain.ShippingAddress{
			Address: "1 Main St", City: "Lisbon", PostalCode: "1000-001", Country: "PT",
		},
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.InDelta(t, 699.98, order.TotalPrice, 0.001)
	assert.False(t, order.IsPaid)

	result, err := client.Orders().Pay(ctx, domain.PaymentRequest{
		CallbackURL: "http://localhost:3000/orders",
		Order:       order.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.True(t, result.Order.IsPaid)

	delivered, err := client.Orders().MarkDelivered(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, delivered.IsDelivered)

	mine, err := client.Orders().Mine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, order.ID, mine[0].ID)

	count, err := client.Orders().TotalOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count.TotalOrders) // seeded demo order plus this one

	sales, err := client.Orders().TotalSales(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2399.99+699.98, sales.TotalSales, 0.001)

	byDate, err := client.Orders().SalesByDate(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, byDate)
}

func TestTokens(t *testing.T) {
	tokens := demoserver.NewTokens("test-secret", time.Hour)
	user := &domain.User{ID: "2", Username: "Admin User", IsAdmin: true}

	t.Run("round_trip", func(t *testing.T) {
		token, err := tokens.Issue(user)
		require.NoError(t, err)

		verified, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "2", verified.ID)
		assert.True(t, verified.IsAdmin)
	})

	t.Run("wrong_secret_is_rejected", func(t *testing.T) {
		token, err := tokens.Issue(user)
		require.NoError(t, err)

		other := demoserver.NewTokens("different-secret", time.Hour)
		_, err = other.Verify(token)
		require.ErrorIs(t, err, demoserver.ErrInvalidToken)
	})

	t.Run("garbage_is_rejected", func(t *testing.T) {
		_, err := tokens.Verify("not-a-token")
		require.ErrorIs(t, err, demoserver.ErrInvalidToken)
	})
}
