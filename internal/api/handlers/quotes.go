package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewatch-io/pricewatch/internal/store"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// QuotesHandler handles price snapshot endpoints.
type QuotesHandler struct {
	store store.Store
}

// NewQuotesHandler creates a new QuotesHandler.
func NewQuotesHandler(s store.Store) *QuotesHandler {
	return &QuotesHandler{store: s}
}

// CompareInput is the input for the price comparison endpoint.
type CompareInput struct {
	ID string `path:"id" doc:"Product UUID"`
}

// CompareOutput is the response for the price comparison endpoint: the
// latest quote per store plus the current best.
type CompareOutput struct {
	Body struct {
		ProductID string              `json:"product_id"`
		Quotes    []domain.PriceQuote `json:"quotes"`
		Best      *domain.PriceQuote  `json:"best,omitempty"`
	}
}

// HistoryInput is the input for the quote history endpoint.
type HistoryInput struct {
	ID      string `path:"id"       doc:"Product UUID"`
	StoreID string `query:"store_id" doc:"Store UUID"`
	Limit   int    `query:"limit"    doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
}

// HistoryOutput is the response for the quote history endpoint, newest
// first.
type HistoryOutput struct {
	Body struct {
		ProductID string              `json:"product_id"`
		StoreID   string              `json:"store_id"`
		Quotes    []domain.PriceQuote `json:"quotes"`
	}
}

// Compare returns the latest quote from each store for a product, plus
// the cheapest of them.
func (h *QuotesHandler) Compare(ctx context.Context, input *CompareInput) (*CompareOutput, error) {
	if _, err := h.store.GetProduct(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("product not found")
		}
		return nil, huma.Error500InternalServerError("fetching product failed: " + err.Error())
	}

	quotes, err := h.store.LatestQuotes(ctx, []string{input.ID})
	if err != nil {
		return nil, huma.Error500InternalServerError("quote query failed: " + err.Error())
	}

	if quotes == nil {
		quotes = []domain.PriceQuote{}
	}

	resp := &CompareOutput{}
	resp.Body.ProductID = input.ID
	resp.Body.Quotes = quotes
	resp.Body.Best = domain.BestQuote(quotes)

	return resp, nil
}

// History returns the quote history for a (product, store) pair.
func (h *QuotesHandler) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	if input.StoreID == "" {
		return nil, huma.Error422UnprocessableEntity("store_id is required")
	}

	quotes, err := h.store.QuoteHistory(ctx, input.ID, input.StoreID, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("history query failed: " + err.Error())
	}

	if quotes == nil {
		quotes = []domain.PriceQuote{}
	}

	resp := &HistoryOutput{}
	resp.Body.ProductID = input.ID
	resp.Body.StoreID = input.StoreID
	resp.Body.Quotes = quotes

	return resp, nil
}

// RegisterQuoteRoutes registers price snapshot endpoints with the Huma API.
func RegisterQuoteRoutes(api huma.API, h *QuotesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "compare-prices",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}/prices",
		Summary:     "Compare current prices",
		Description: "Returns the latest quote from each store for a product, plus the cheapest.",
		Tags:        []string{"quotes"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Compare)

	huma.Register(api, huma.Operation{
		OperationID: "quote-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}/history",
		Summary:     "Get quote history",
		Description: "Returns price observations for a (product, store) pair, newest first.",
		Tags:        []string{"quotes"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.History)
}
