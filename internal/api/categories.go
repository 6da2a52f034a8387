package api

import (
	"context"
	"encoding/json"
	"fmt"

	"azushop-client/internal/domain"
)

// CategoriesAPI groups the category operations
type CategoriesAPI struct {
	client *Client
}

// Categories returns the category API surface
func (c *Client) Categories() *CategoriesAPI {
	return &CategoriesAPI{client: c}
}

// CategoryInput is the payload for category create/update
type CategoryInput struct {
	Name string `json:"name"`
}

// List returns all categories
func (a *CategoriesAPI) List(ctx context.Context) ([]domain.Category, error) {
	payload, err := a.client.Call(ctx, "getCategories", nil)
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode category list: %w", err)
	}
	return categories, nil
}

// Get returns one category by id
func (a *CategoriesAPI) Get(ctx context.Context, id string) (*domain.Category, error) {
	payload, err := a.client.Call(ctx, "getCategory", &Request{PathArgs: []any{id}})
	if err != nil {
		return nil, err
	}
	return decodeCategory(payload)
}

// Create adds a category (admin)
func (a *CategoriesAPI) Create(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	payload, err := a.client.Call(ctx, "createCategory", &Request{Body: input})
	if err != nil {
		return nil, err
	}
	return decodeCategory(payload)
}

// Update renames a category (admin)
func (a *CategoriesAPI) Update(ctx context.Context, id string, input CategoryInput) (*domain.Category, error) {
	payload, err := a.client.Call(ctx, "updateCategory", &Request{Body: input, PathArgs: []any{id}})
	if err != nil {
		return nil, err
	}
	return decodeCategory(payload)
}

// Delete removes a category (admin)
func (a *CategoriesAPI) Delete(ctx context.Context, id string) error {
	_, err := a.client.Call(ctx, "deleteCategory", &Request{PathArgs: []any{id}})
	return err
}

func decodeCategory(payload json.RawMessage) (*domain.Category, error) {
	var category domain.Category
	if err := json.Unmarshal(payload, &category); err != nil {
		return nil, fmt.Errorf("failed to decode category: %w", err)
	}
	return &category, nil
}
