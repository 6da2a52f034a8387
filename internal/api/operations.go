package api

import "net/http"

// Operation binds a logical backend operation to an ordered list of
// candidate path templates. The backend's route shape has drifted
// between deployments, so each operation lists every shape it has been
// seen under, most likely first. Templates may contain one or more %s
// verbs filled from the call's path arguments.
type Operation struct {
	Name   string
	Method string
	Paths  []string

	// Identity marks login/register: a {user, token} response
	// establishes a session and emits login-success.
	Identity bool

	// Logout marks the fail-safe logout operation: local session state
	// is cleared and a logout event emitted regardless of the outcome.
	Logout bool

	// Authenticated marks operations whose success opportunistically
	// extends the session (rolling expiry).
	Authenticated bool

	// Multipart leaves the request content type to the caller-supplied
	// body (binary uploads) instead of forcing JSON.
	Multipart bool
}

// Operations returns the full logical-operation registry for the
// storefront backend.
func Operations() map[string]Operation {
	ops := []Operation{
		// Users
		{Name: "register", Method: http.MethodPost, Identity: true,
			Paths: []string{"/users/register", "/auth/register", "/register"}},
		{Name: "login", Method: http.MethodPost, Identity: true,
			Paths: []string{"/users/auth", "/users/login", "/auth/login", "/login"}},
		{Name: "logout", Method: http.MethodPost, Logout: true,
			Paths: []string{"/users/logout", "/auth/logout", "/logout"}},
		{Name: "getProfile", Method: http.MethodGet, Authenticated: true,
			Paths: []string{"/users/profile", "/auth/profile", "/profile", "/users/me"}},
		{Name: "updateProfile", Method: http.MethodPut, Authenticated: true,
			Paths: []string{"/users/profile", "/profile"}},
		{Name: "uploadProfilePicture", Method: http.MethodPost, Authenticated: true, Multipart: true,
			Paths: []string{"/users/profile/picture", "/profile/picture"}},
		{Name: "listUsers", Method: http.MethodGet, Authenticated: true,
			Paths: []string{"/users", "/users/all"}},
		{Name: "getUser", Method: http.MethodGet, Authenticated: true,
			Paths: []string{"/users/%s"}},
		{Name: "updateUser", Method: http.MethodPut, Authenticated: true,
			Paths: []string{"/users/%s"}},
		{Name: "deleteUser", Method: http.MethodDelete, Authenticated: true,
			Paths: []string{"/users/%s"}},

		// Products
		{Name: "getProducts", Method: http.MethodGet,
			Paths: []string{"/products"}},
		{Name: "getAllProducts", Method: http.MethodGet,
			Paths: []string{"/products/allproducts", "/products/all"}},
		{Name: "getProduct", Method: http.MethodGet,
			Paths: []string{"/products/%s"}},
		{Name: "createProduct", Method: http.MethodPost, Authenticated: true, Multipart: true,
			Paths: []string{"/products"}},
		{Name: "updateProduct", Method: http.MethodPut, Authenticated: true, Multipart: true,
			Paths: []string{"/products/%s"}},
		{Name: "deleteProduct", Method: http.MethodDelete, Authenticated: true,
			Paths: []string{"/products/%s"}},
		{Name: "addReview", Method: http.MethodPost, Authenticated: true,
			Paths: []string{"/products/%s/reviews"}},
		{Name: "getTopProducts", Method: http.MethodGet,
			Paths: []string{"/products/top"}},
		{Name: "getNewProducts", Method: http.MethodGet,
			Paths: []string{"/products/new"}},
		{Name: "filterProducts", Method: http.MethodPost,
			Paths: []string{"/products/filtered-products", "/products/filter"}},

		// Categories
		{Name: "getCategories", Method: http.MethodGet,
			Paths: []string{"/categories", "/category/categories"}},
		{Name: "getCategory", Method: http.MethodGet,
			Paths: []string{"/categories/%s"}},
		{Name: "createCategory", Method: http.MethodPost, Authenticated: true,
			Paths: []string{"/categories", "/category"}},
		{Name: "updateCategory", Method: http.MethodPut, Authenticated: true,
			Paths: []string{"/categories/%s", "/category/%s"}},
		{Name: "deleteCategory", Method: http.MethodDelete, Authenticated: true,
			Paths: []string{"/categories/%s", "/category/%s"}},

		// Orders
		{Name: "createOrder", Method: http.MethodPost, Authenticated: true,
			Paths: []string{"/orders"}},
		{Name: "listOrders", Method: http.MethodGet, Authenticated: true,
			Paths: []string{"/orders"}},
		{Name: "myOrders", Method: http.MethodGet, Authenticated: true,
			Paths: []string{"/orders/mine", "/orders/myorders"}},
		{Name: "getOrder", Method: http.MethodGet, Authenticated: true,
			Paths: []string{"/orders/%s"}},
		{Name: "payOrder", Method: http.MethodPost, Authenticated: true,
			Paths: []string{"/orders/pay"}},
		{Name: "deliverOrder", Method: http.MethodPut, Authenticated: true,
			Paths: []string{"/orders/%s/deliver"}},
		{Name: "totalOrders", Method: http.MethodGet, Authenticated: true,
			Paths: []string{"/orders/total-orders"}},
		{Name: "totalSales", Method: http.MethodGet, Authenticated: true,
			Paths: []string{"/orders/total-sales"}},
		{Name: "salesByDate", Method: http.MethodGet, Authenticated: true,
			Paths: []string{"/orders/total-sales-by-date"}},
	}

	registry := make(map[string]Operation, len(ops))
	for _, op := range ops {
		registry[op.Name] = op
	}
	return registry
}
