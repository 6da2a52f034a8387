package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/url"

	"azushop-client/internal/domain"
)

// ProductsAPI groups the catalog operations
type ProductsAPI struct {
	client *Client
}

// Products returns the catalog API surface
func (c *Client) Products() *ProductsAPI {
	return &ProductsAPI{client: c}
}

// ProductForm is the multipart payload for product create/update.
// Image is optional; when present it is sent as a file part.
type ProductForm struct {
	Name         string
	Price        float64
	Brand        string
	Category     string
	CountInStock int
	Description  string
	ImageName    string
	Image        []byte
}

// List returns a page of products, optionally filtered by keyword
func (p *ProductsAPI) List(ctx context.Context, keyword string) (*domain.ProductPage, error) {
	req := &Request{}
	if keyword != "" {
		req.Query = url.Values{"keyword": []string{keyword}}
	}

	payload, err := p.client.Call(ctx, "getProducts", req)
	if err != nil {
		return nil, err
	}

	var page domain.ProductPage
	if err := json.Unmarshal(payload, &page); err != nil {
		return nil, fmt.Errorf("failed to decode product page: %w", err)
	}
	return &page, nil
}

// ListAll returns the unpaginated catalog (admin)
func (p *ProductsAPI) ListAll(ctx context.Context) ([]domain.Product, error) {
	payload, err := p.client.Call(ctx, "getAllProducts", nil)
	if err != nil {
		return nil, err
	}
	return decodeProducts(payload)
}

// Get returns one product by id
func (p *ProductsAPI) Get(ctx context.Context, id string) (*domain.Product, error) {
	payload, err := p.client.Call(ctx, "getProduct", &Request{PathArgs: []any{id}})
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &product, nil
}

// Create adds a product (admin). The form is sent as multipart so the
// image travels alongside the fields.
func (p *ProductsAPI) Create(ctx context.Context, form ProductForm) (*domain.Product, error) {
	body, contentType, err := encodeProductForm(form)
	if err != nil {
		return nil, err
	}

	payload, err := p.client.Call(ctx, "createProduct", &Request{
		RawBody:     body,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &product, nil
}

// Update mutates a product by id (admin)
func (p *ProductsAPI) Update(ctx context.Context, id string, form ProductForm) (*domain.Product, error) {
	body, contentType, err := encodeProductForm(form)
	if err != nil {
		return nil, err
	}

	payload, err := p.client.Call(ctx, "updateProduct", &Request{
		RawBody:     body,
		ContentType: contentType,
		PathArgs:    []any{id},
	})
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &product, nil
}

// Delete removes a product by id (admin)
func (p *ProductsAPI) Delete(ctx context.Context, id string) error {
	_, err := p.client.Call(ctx, "deleteProduct", &Request{PathArgs: []any{id}})
	return err
}

// AddReview attaches a rating and comment to a product
func (p *ProductsAPI) AddReview(ctx context.Context, id string, review domain.Review) error {
	_, err := p.client.Call(ctx, "addReview", &Request{Body: review, PathArgs: []any{id}})
	return err
}

// Top returns the highest-rated products
func (p *ProductsAPI) Top(ctx context.Context) ([]domain.Product, error) {
	payload, err := p.client.Call(ctx, "getTopProducts", nil)
	if err != nil {
		return nil, err
	}
	return decodeProducts(payload)
}

// New returns the most recently added products
func (p *ProductsAPI) New(ctx context.Context) ([]domain.Product, error) {
	payload, err := p.client.Call(ctx, "getNewProducts", nil)
	if err != nil {
		return nil, err
	}
	return decodeProducts(payload)
}

// Filter returns products matching category and price constraints
func (p *ProductsAPI) Filter(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	payload, err := p.client.Call(ctx, "filterProducts", &Request{Body: filter})
	if err != nil {
		return nil, err
	}
	return decodeProducts(payload)
}

func decodeProducts(payload json.RawMessage) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, fmt.Errorf("failed to decode product list: %w", err)
	}
	return products, nil
}

// encodeProductForm builds the multipart body for product writes
func encodeProductForm(form ProductForm) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":         form.Name,
		"price":        fmt.Sprintf("%g", form.Price),
		"brand":        form.Brand,
		"category":     form.Category,
		"countInStock": fmt.Sprintf("%d", form.CountInStock),
		"description":  form.Description,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	if len(form.Image) > 0 {
		name := form.ImageName
		if name == "" {
			name = "image"
		}
		part, err := writer.CreateFormFile("image", name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(form.Image); err != nil {
			return nil, "", fmt.Errorf("failed to write image part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}
