package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewatch-io/pricewatch/internal/store"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// ProductsHandler handles catalog endpoints.
type ProductsHandler struct {
	store store.Store
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(s store.Store) *ProductsHandler {
	return &ProductsHandler{store: s}
}

// ListProductsInput is the input for listing products with optional filters.
type ListProductsInput struct {
	Name     string `query:"name"     doc:"Filter by name substring"`
	Category string `query:"category" doc:"Filter by category"`
	Brand    string `query:"brand"    doc:"Filter by brand"`
	Limit    int    `query:"limit"    doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset   int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
}

// ListProductsOutput is the response for listing products.
type ListProductsOutput struct {
	Body struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetProductInput is the input for getting a single product.
type GetProductInput struct {
	ID string `path:"id" doc:"Product UUID"`
}

// GetProductOutput is the response for getting a single product.
type GetProductOutput struct {
	Body domain.Product
}

// CreateProductInput is the request body for creating a product.
type CreateProductInput struct {
	Body struct {
		Name        string `json:"name" minLength:"1" doc:"Product name" example:"Acme Widget Pro"`
		Category    string `json:"category,omitempty" doc:"Category slug"`
		Brand       string `json:"brand,omitempty" doc:"Brand name"`
		Model       string `json:"model,omitempty" doc:"Model identifier"`
		Description string `json:"description,omitempty" doc:"Free-text description"`
		ImageURL    string `json:"image_url,omitempty" doc:"Product image URL"`
	}
}

// CreateProductOutput is the response for creating a product.
type CreateProductOutput struct {
	Status int
	Body   domain.Product
}

// ListProducts returns catalog products with optional filters and pagination.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	input *ListProductsInput,
) (*ListProductsOutput, error) {
	q := &store.ProductQuery{
		NameLike: input.Name,
		Category: input.Category,
		Brand:    input.Brand,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}

	products, total, err := h.store.ListProducts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("product query failed: " + err.Error())
	}

	if products == nil {
		products = []domain.Product{}
	}

	resp := &ListProductsOutput{}
	resp.Body.Products = products
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetProduct returns a single product by ID.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *GetProductInput,
) (*GetProductOutput, error) {
	p, err := h.store.GetProduct(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("product not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching product failed: " + err.Error())
	}

	return &GetProductOutput{Body: *p}, nil
}

// CreateProduct adds a product to the catalog.
func (h *ProductsHandler) CreateProduct(
	ctx context.Context,
	input *CreateProductInput,
) (*CreateProductOutput, error) {
	p := domain.Product{
		Name:        input.Body.Name,
		Category:    input.Body.Category,
		Brand:       input.Body.Brand,
		Model:       input.Body.Model,
		Description: input.Body.Description,
		ImageURL:    input.Body.ImageURL,
	}

	if err := h.store.CreateProduct(ctx, &p); err != nil {
		return nil, huma.Error500InternalServerError("creating product failed: " + err.Error())
	}

	return &CreateProductOutput{Status: http.StatusCreated, Body: p}, nil
}

// RegisterProductRoutes registers catalog endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Description: "Returns catalog products with optional name, category, and brand filters.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get a product by ID",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetProduct)

	huma.Register(api, huma.Operation{
		OperationID:   "create-product",
		Method:        http.MethodPost,
		Path:          "/api/v1/products",
		Summary:       "Create a product",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"products"},
		Errors:        []int{http.StatusInternalServerError},
	}, h.CreateProduct)
}
