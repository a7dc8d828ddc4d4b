package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewatch-io/pricewatch/internal/store"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// StoresHandler handles retailer endpoints.
type StoresHandler struct {
	store store.Store
}

// NewStoresHandler creates a new StoresHandler.
func NewStoresHandler(s store.Store) *StoresHandler {
	return &StoresHandler{store: s}
}

// ListStoresInput is the input for listing retailers.
type ListStoresInput struct {
	Active bool `query:"active" doc:"Only return active stores"`
}

// ListStoresOutput is the response for listing retailers.
type ListStoresOutput struct {
	Body []domain.Store
}

// CreateStoreInput is the request body for registering a retailer.
type CreateStoreInput struct {
	Body struct {
		Name   string `json:"name" minLength:"1" doc:"Display name"`
		Slug   string `json:"slug" minLength:"1" doc:"Unique short identifier" example:"shop-a"`
		URL    string `json:"url,omitempty" doc:"Storefront URL"`
		Active bool   `json:"active" doc:"Whether refresh cycles include this store"`
	}
}

// CreateStoreOutput is the response for registering a retailer.
type CreateStoreOutput struct {
	Status int
	Body   domain.Store
}

// ListStores returns known retailers.
func (h *StoresHandler) ListStores(
	ctx context.Context,
	input *ListStoresInput,
) (*ListStoresOutput, error) {
	stores, err := h.store.ListStores(ctx, input.Active)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing stores failed: " + err.Error())
	}

	if stores == nil {
		stores = []domain.Store{}
	}

	return &ListStoresOutput{Body: stores}, nil
}

// CreateStore registers a retailer.
func (h *StoresHandler) CreateStore(
	ctx context.Context,
	input *CreateStoreInput,
) (*CreateStoreOutput, error) {
	st := domain.Store{
		Name:   input.Body.Name,
		Slug:   input.Body.Slug,
		URL:    input.Body.URL,
		Active: input.Body.Active,
	}

	if err := h.store.CreateStore(ctx, &st); err != nil {
		return nil, huma.Error500InternalServerError("creating store failed: " + err.Error())
	}

	return &CreateStoreOutput{Status: http.StatusCreated, Body: st}, nil
}

// RegisterStoreRoutes registers retailer endpoints with the Huma API.
func RegisterStoreRoutes(api huma.API, h *StoresHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-stores",
		Method:      http.MethodGet,
		Path:        "/api/v1/stores",
		Summary:     "List stores",
		Tags:        []string{"stores"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListStores)

	huma.Register(api, huma.Operation{
		OperationID:   "create-store",
		Method:        http.MethodPost,
		Path:          "/api/v1/stores",
		Summary:       "Register a store",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"stores"},
		Errors:        []int{http.StatusInternalServerError},
	}, h.CreateStore)
}
