package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewatch-io/pricewatch/internal/store"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// FavoritesHandler handles watch list endpoints.
type FavoritesHandler struct {
	store store.Store
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(s store.Store) *FavoritesHandler {
	return &FavoritesHandler{store: s}
}

// CreateFavoriteInput is the request body for favoriting a product.
type CreateFavoriteInput struct {
	Body struct {
		UserID    string `json:"user_id" minLength:"1" doc:"Owning user id"`
		ProductID string `json:"product_id" minLength:"1" doc:"Product UUID"`
	}
}

// CreateFavoriteOutput is the response for favoriting a product.
type CreateFavoriteOutput struct {
	Status int
	Body   domain.Favorite
}

// ListFavoritesInput is the input for listing a user's favorites.
type ListFavoritesInput struct {
	UserID string `query:"user_id" required:"true" doc:"Owning user id"`
}

// ListFavoritesOutput is the response for listing a user's favorites.
type ListFavoritesOutput struct {
	Body []domain.Favorite
}

// DeleteFavoriteInput is the input for removing a favorite.
type DeleteFavoriteInput struct {
	ID     string `path:"id"      doc:"Favorite UUID"`
	UserID string `query:"user_id" required:"true" doc:"Owning user id"`
}

// DeleteFavoriteOutput is the response for removing a favorite.
type DeleteFavoriteOutput struct {
	Body StatusResponse
}

// CreateFavorite puts a product on the user's watch list. Favoriting the
// same product twice is a no-op.
func (h *FavoritesHandler) CreateFavorite(
	ctx context.Context,
	input *CreateFavoriteInput,
) (*CreateFavoriteOutput, error) {
	if _, err := h.store.GetProduct(ctx, input.Body.ProductID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("product not found")
		}
		return nil, huma.Error500InternalServerError("fetching product failed: " + err.Error())
	}

	f := domain.Favorite{
		UserID:    input.Body.UserID,
		ProductID: input.Body.ProductID,
	}

	if err := h.store.CreateFavorite(ctx, &f); err != nil {
		return nil, huma.Error500InternalServerError("creating favorite failed: " + err.Error())
	}

	return &CreateFavoriteOutput{Status: http.StatusCreated, Body: f}, nil
}

// ListFavorites returns a user's watch list.
func (h *FavoritesHandler) ListFavorites(
	ctx context.Context,
	input *ListFavoritesInput,
) (*ListFavoritesOutput, error) {
	favorites, err := h.store.ListFavoritesByUser(ctx, input.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing favorites failed: " + err.Error())
	}

	if favorites == nil {
		favorites = []domain.Favorite{}
	}

	return &ListFavoritesOutput{Body: favorites}, nil
}

// DeleteFavorite removes a product from the user's watch list.
func (h *FavoritesHandler) DeleteFavorite(
	ctx context.Context,
	input *DeleteFavoriteInput,
) (*DeleteFavoriteOutput, error) {
	err := h.store.DeleteFavorite(ctx, input.ID, input.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("favorite not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("deleting favorite failed: " + err.Error())
	}

	return &DeleteFavoriteOutput{Body: StatusResponse{Status: "deleted"}}, nil
}

// RegisterFavoriteRoutes registers watch list endpoints with the Huma API.
func RegisterFavoriteRoutes(api huma.API, h *FavoritesHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-favorite",
		Method:        http.MethodPost,
		Path:          "/api/v1/favorites",
		Summary:       "Favorite a product",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"favorites"},
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.CreateFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "list-favorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List a user's favorites",
		Tags:        []string{"favorites"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "delete-favorite",
		Method:      http.MethodDelete,
		Path:        "/api/v1/favorites/{id}",
		Summary:     "Remove a favorite",
		Tags:        []string{"favorites"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.DeleteFavorite)
}
