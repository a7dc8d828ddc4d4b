package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pricewatch-io/pricewatch/internal/search"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// SearchResult is the response of a catalog search: the interpreted intent
// and the products it matched.
type SearchResult struct {
	Intent   *search.Intent   `json:"intent"`
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// Search interprets a free-text query and returns matching products.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var result SearchResult
	if err := c.get(ctx, "/api/v1/search?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
