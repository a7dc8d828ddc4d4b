package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewatch-io/pricewatch/internal/search"
	"github.com/pricewatch-io/pricewatch/internal/store"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// SearchHandler handles free-text catalog search.
type SearchHandler struct {
	analyzer search.Analyzer
	store    store.Store
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(a search.Analyzer, s store.Store) *SearchHandler {
	return &SearchHandler{analyzer: a, store: s}
}

// SearchInput is the input for the search endpoint.
type SearchInput struct {
	Query string `query:"q" required:"true" minLength:"1" doc:"Free-text query" example:"gaming laptop under 800"`
	Limit int    `query:"limit" doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
}

// SearchOutput is the response for the search endpoint: the interpreted
// intent and the catalog products it matched.
type SearchOutput struct {
	Body struct {
		Intent   *search.Intent   `json:"intent"`
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
	}
}

// Search interprets the query and looks up matching catalog products.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	intent, err := h.analyzer.Analyze(ctx, input.Query)
	if err != nil {
		return nil, huma.Error500InternalServerError("query analysis failed: " + err.Error())
	}

	q := &store.ProductQuery{
		Category: intent.Category,
		Brand:    intent.Brand,
		Limit:    input.Limit,
	}
	if intent.ProductType != "" {
		q.NameLike = intent.ProductType
	} else if len(intent.Keywords) > 0 {
		q.NameLike = intent.Keywords[0]
	}

	products, total, err := h.store.ListProducts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("product query failed: " + err.Error())
	}

	if products == nil {
		products = []domain.Product{}
	}

	out := &SearchOutput{}
	out.Body.Intent = intent
	out.Body.Products = products
	out.Body.Total = total
	return out, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search the catalog",
		Description: "Interprets a free-text query into structured intent and returns matching products.",
		Tags:        []string{"search"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Search)
}
