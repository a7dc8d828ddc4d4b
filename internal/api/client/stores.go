package client

import (
	"context"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// ListStores returns known retailers. With activeOnly set, inactive
// retailers are filtered out.
func (c *Client) ListStores(ctx context.Context, activeOnly bool) ([]domain.Store, error) {
	path := "/api/v1/stores"
	if activeOnly {
		path += "?active=true"
	}

	var stores []domain.Store
	if err := c.get(ctx, path, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// storeRequest contains only the fields the API accepts for create.
type storeRequest struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	URL    string `json:"url,omitempty"`
	Active bool   `json:"active"`
}

// CreateStore registers a retailer.
func (c *Client) CreateStore(ctx context.Context, s *domain.Store) (*domain.Store, error) {
	req := storeRequest{
		Name:   s.Name,
		Slug:   s.Slug,
		URL:    s.URL,
		Active: s.Active,
	}

	var created domain.Store
	if err := c.post(ctx, "/api/v1/stores", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
