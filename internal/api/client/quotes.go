package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// PriceComparison is the latest quote per store for a product, plus the
// current best.
type PriceComparison struct {
	ProductID string              `json:"product_id"`
	Quotes    []domain.PriceQuote `json:"quotes"`
	Best      *domain.PriceQuote  `json:"best,omitempty"`
}

// QuoteHistory is the observation history for a (product, store) pair.
type QuoteHistory struct {
	ProductID string              `json:"product_id"`
	StoreID   string              `json:"store_id"`
	Quotes    []domain.PriceQuote `json:"quotes"`
}

// ComparePrices returns the latest quote from each store for a product.
func (c *Client) ComparePrices(ctx context.Context, productID string) (*PriceComparison, error) {
	var cmp PriceComparison
	if err := c.get(ctx, "/api/v1/products/"+productID+"/prices", &cmp); err != nil {
		return nil, err
	}
	return &cmp, nil
}

// GetQuoteHistory returns quote history for a (product, store) pair,
// newest first.
func (c *Client) GetQuoteHistory(
	ctx context.Context,
	productID, storeID string,
	limit int,
) (*QuoteHistory, error) {
	q := url.Values{}
	q.Set("store_id", storeID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var hist QuoteHistory
	path := "/api/v1/products/" + productID + "/history?" + q.Encode()
	if err := c.get(ctx, path, &hist); err != nil {
		return nil, err
	}
	return &hist, nil
}
