package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// ProductList is the paginated response for listing products.
type ProductList struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Name     string
	Category string
	Brand    string
	Limit    int
	Offset   int
}

// ListProducts returns catalog products matching the filter.
func (c *Client) ListProducts(ctx context.Context, f ProductFilter) (*ProductList, error) {
	q := url.Values{}
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Brand != "" {
		q.Set("brand", f.Brand)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}

	path := "/api/v1/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list ProductList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.get(ctx, "/api/v1/products/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// productRequest contains only the fields the API accepts for create.
type productRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	req := productRequest{
		Name:        p.Name,
		Category:    p.Category,
		Brand:       p.Brand,
		Model:       p.Model,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}

	var created domain.Product
	if err := c.post(ctx, "/api/v1/products", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
