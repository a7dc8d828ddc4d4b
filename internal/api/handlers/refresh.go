package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewatch-io/pricewatch/internal/engine"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// Refresher defines the interface for triggering a refresh cycle.
type Refresher interface {
	RunRefresh(ctx context.Context, productIDs []string) (*domain.RefreshSummary, error)
	RunScheduledRefresh(ctx context.Context) error
}

// RefreshHandler handles manual refresh trigger requests.
type RefreshHandler struct {
	refresher Refresher
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(r Refresher) *RefreshHandler {
	return &RefreshHandler{refresher: r}
}

// RefreshInput is the request body for the refresh endpoint. An empty
// product list refreshes every tracked product.
type RefreshInput struct {
	Body struct {
		ProductIDs []string `json:"product_ids,omitempty" doc:"Products to refresh; empty means all tracked products"`
	}
}

// RefreshOutput is the response body for the refresh endpoint.
type RefreshOutput struct {
	Body struct {
		Status  string                 `json:"status" example:"refresh completed"`
		Summary *domain.RefreshSummary `json:"summary,omitempty"`
	}
}

// Refresh runs one refresh cycle synchronously and returns its summary.
func (h *RefreshHandler) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	resp := &RefreshOutput{}
	resp.Body.Status = "refresh completed"

	if len(input.Body.ProductIDs) == 0 {
		if err := h.refresher.RunScheduledRefresh(ctx); err != nil {
			return nil, huma.Error500InternalServerError("refresh failed: " + err.Error())
		}
		return resp, nil
	}

	summary, err := h.refresher.RunRefresh(ctx, input.Body.ProductIDs)
	if errors.Is(err, engine.ErrInvalidBatch) {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	if errors.Is(err, engine.ErrStorageUnavailable) {
		return nil, huma.Error503ServiceUnavailable(err.Error())
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("refresh failed: " + err.Error())
	}

	resp.Body.Summary = summary
	return resp, nil
}

// RegisterRefreshRoutes registers refresh endpoints with the Huma API.
func RegisterRefreshRoutes(api huma.API, h *RefreshHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/refresh",
		Summary:     "Trigger a refresh cycle",
		Description: "Fetches current quotes for the given products (or every tracked product), " +
			"detects changes, and fires matching alerts.",
		Tags: []string{"refresh"},
		Errors: []int{
			http.StatusUnprocessableEntity,
			http.StatusServiceUnavailable,
			http.StatusInternalServerError,
		},
	}, h.Refresh)
}
