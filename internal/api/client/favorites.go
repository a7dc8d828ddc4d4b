package client

import (
	"context"
	"net/url"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// favoriteRequest contains only the fields the API accepts for create.
type favoriteRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

// CreateFavorite puts a product on the user's watch list.
func (c *Client) CreateFavorite(ctx context.Context, userID, productID string) (*domain.Favorite, error) {
	req := favoriteRequest{UserID: userID, ProductID: productID}

	var created domain.Favorite
	if err := c.post(ctx, "/api/v1/favorites", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListFavorites returns a user's watch list.
func (c *Client) ListFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	q := url.Values{}
	q.Set("user_id", userID)

	var favorites []domain.Favorite
	if err := c.get(ctx, "/api/v1/favorites?"+q.Encode(), &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// DeleteFavorite removes a product from the user's watch list.
func (c *Client) DeleteFavorite(ctx context.Context, id, userID string) error {
	q := url.Values{}
	q.Set("user_id", userID)
	return c.del(ctx, "/api/v1/favorites/"+id+"?"+q.Encode(), nil)
}
