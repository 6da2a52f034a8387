package api

import (
	"context"
	"encoding/json"
	"fmt"

	"azushop-client/internal/domain"
)

// UsersAPI groups the user and authentication operations
type UsersAPI struct {
	client *Client
}

// Users returns the user-facing API surface
func (c *Client) Users() *UsersAPI {
	return &UsersAPI{client: c}
}

// RegisterInput is the payload for account creation
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the payload for authentication
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileInput carries the changeable profile fields
type UpdateProfileInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// UpdateUserInput is the admin-side user mutation payload
type UpdateUserInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	IsAdmin  *bool  `json:"isAdmin,omitempty"`
}

// Register creates an account. On success the session is already
// established by the underlying call.
func (a *UsersAPI) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	payload, err := a.client.Call(ctx, "register", &Request{Body: input})
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

// Login authenticates and establishes a session
func (a *UsersAPI) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	payload, err := a.client.Call(ctx, "login", &Request{Body: input})
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

// Logout ends the session. The remote call is best-effort; local state
// is cleared regardless, so this never fails from the caller's view.
func (a *UsersAPI) Logout(ctx context.Context) {
	// The logout operation clears local state and emits the logout
	// event whether or not the remote call succeeds.
	_, _ = a.client.Call(ctx, "logout", nil)
}

// Profile fetches the signed-in user's profile
func (a *UsersAPI) Profile(ctx context.Context) (*domain.User, error) {
	payload, err := a.client.Call(ctx, "getProfile", nil)
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

// UpdateProfile updates the signed-in user's profile
func (a *UsersAPI) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	payload, err := a.client.Call(ctx, "updateProfile", &Request{Body: input})
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

// UploadProfilePicture uploads a profile image as a multipart payload
func (a *UsersAPI) UploadProfilePicture(ctx context.Context, form []byte, contentType string) (*domain.User, error) {
	payload, err := a.client.Call(ctx, "uploadProfilePicture", &Request{
		RawBody:     form,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

// List returns all users (admin)
func (a *UsersAPI) List(ctx context.Context) ([]domain.User, error) {
	payload, err := a.client.Call(ctx, "listUsers", nil)
	if err != nil {
		return nil, err
	}

	var users []domain.User
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user list: %w", err)
	}
	return users, nil
}

// Get returns one user by id (admin)
func (a *UsersAPI) Get(ctx context.Context, id string) (*domain.User, error) {
	payload, err := a.client.Call(ctx, "getUser", &Request{PathArgs: []any{id}})
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

// Update mutates one user by id (admin)
func (a *UsersAPI) Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	payload, err := a.client.Call(ctx, "updateUser", &Request{Body: input, PathArgs: []any{id}})
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

// Delete removes one user by id (admin)
func (a *UsersAPI) Delete(ctx context.Context, id string) error {
	_, err := a.client.Call(ctx, "deleteUser", &Request{PathArgs: []any{id}})
	return err
}

// decodeUser accepts both nested {user: {...}} and flat user responses
func decodeUser(payload json.RawMessage) (*domain.User, error) {
	var nested struct {
		User *domain.User `json:"user"`
	}
	if err := json.Unmarshal(payload, &nested); err == nil && nested.User != nil && nested.User.ID != "" {
		return nested.User, nil
	}

	var flat domain.User
	if err := json.Unmarshal(payload, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &flat, nil
}
