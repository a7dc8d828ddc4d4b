package client

import (
	"context"
	"net/url"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// alertRequest contains only the fields the API accepts for create.
type alertRequest struct {
	UserID      string `json:"user_id"`
	ProductID   string `json:"product_id"`
	TargetPrice string `json:"target_price"`
}

// CreateAlert registers a standing price alert.
func (c *Client) CreateAlert(
	ctx context.Context,
	userID, productID, targetPrice string,
) (*domain.PriceAlert, error) {
	req := alertRequest{
		UserID:      userID,
		ProductID:   productID,
		TargetPrice: targetPrice,
	}

	var created domain.PriceAlert
	if err := c.post(ctx, "/api/v1/alerts", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListAlerts returns all alerts owned by a user.
func (c *Client) ListAlerts(ctx context.Context, userID string) ([]domain.PriceAlert, error) {
	q := url.Values{}
	q.Set("user_id", userID)

	var alerts []domain.PriceAlert
	if err := c.get(ctx, "/api/v1/alerts?"+q.Encode(), &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// DeleteAlert removes an alert owned by the user.
func (c *Client) DeleteAlert(ctx context.Context, id, userID string) error {
	q := url.Values{}
	q.Set("user_id", userID)
	return c.del(ctx, "/api/v1/alerts/"+id+"?"+q.Encode(), nil)
}
