package client

import (
	"context"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// RefreshResult is the response of a manual refresh trigger.
type RefreshResult struct {
	Status  string                 `json:"status"`
	Summary *domain.RefreshSummary `json:"summary,omitempty"`
}

// refreshRequest contains the refresh trigger body.
type refreshRequest struct {
	ProductIDs []string `json:"product_ids,omitempty"`
}

// TriggerRefresh runs one refresh cycle. An empty productIDs list refreshes
// every tracked product.
func (c *Client) TriggerRefresh(ctx context.Context, productIDs []string) (*RefreshResult, error) {
	var result RefreshResult
	req := refreshRequest{ProductIDs: productIDs}
	if err := c.post(ctx, "/api/v1/refresh", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
