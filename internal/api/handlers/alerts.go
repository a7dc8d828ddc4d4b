package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/pricewatch-io/pricewatch/internal/store"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// AlertsHandler handles price alert endpoints.
type AlertsHandler struct {
	store store.Store
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(s store.Store) *AlertsHandler {
	return &AlertsHandler{store: s}
}

// CreateAlertInput is the request body for creating an alert.
type CreateAlertInput struct {
	Body struct {
		UserID      string `json:"user_id" minLength:"1" doc:"Owning user id"`
		ProductID   string `json:"product_id" minLength:"1" doc:"Product UUID"`
		TargetPrice string `json:"target_price" minLength:"1" doc:"Fire when the best price reaches this" example:"49.99"`
	}
}

// CreateAlertOutput is the response for creating an alert.
type CreateAlertOutput struct {
	Status int
	Body   domain.PriceAlert
}

// ListAlertsInput is the input for listing a user's alerts.
type ListAlertsInput struct {
	UserID string `query:"user_id" required:"true" doc:"Owning user id"`
}

// ListAlertsOutput is the response for listing a user's alerts.
type ListAlertsOutput struct {
	Body []domain.PriceAlert
}

// DeleteAlertInput is the input for deleting an alert.
type DeleteAlertInput struct {
	ID     string `path:"id"      doc:"Alert UUID"`
	UserID string `query:"user_id" required:"true" doc:"Owning user id"`
}

// DeleteAlertOutput is the response for deleting an alert.
type DeleteAlertOutput struct {
	Body StatusResponse
}

// CreateAlert registers a standing price alert. The threshold must be a
// positive decimal amount.
func (h *AlertsHandler) CreateAlert(
	ctx context.Context,
	input *CreateAlertInput,
) (*CreateAlertOutput, error) {
	target, err := decimal.NewFromString(input.Body.TargetPrice)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("target_price is not a valid decimal")
	}
	if !target.IsPositive() {
		return nil, huma.Error422UnprocessableEntity("target_price must be positive")
	}

	if _, err := h.store.GetProduct(ctx, input.Body.ProductID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("product not found")
		}
		return nil, huma.Error500InternalServerError("fetching product failed: " + err.Error())
	}

	a := domain.PriceAlert{
		UserID:      input.Body.UserID,
		ProductID:   input.Body.ProductID,
		TargetPrice: target,
	}

	if err := h.store.CreateAlert(ctx, &a); err != nil {
		return nil, huma.Error500InternalServerError("creating alert failed: " + err.Error())
	}

	return &CreateAlertOutput{Status: http.StatusCreated, Body: a}, nil
}

// ListAlerts returns all alerts owned by a user.
func (h *AlertsHandler) ListAlerts(
	ctx context.Context,
	input *ListAlertsInput,
) (*ListAlertsOutput, error) {
	alerts, err := h.store.ListAlertsByUser(ctx, input.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing alerts failed: " + err.Error())
	}

	if alerts == nil {
		alerts = []domain.PriceAlert{}
	}

	return &ListAlertsOutput{Body: alerts}, nil
}

// DeleteAlert removes an alert owned by the requesting user.
func (h *AlertsHandler) DeleteAlert(
	ctx context.Context,
	input *DeleteAlertInput,
) (*DeleteAlertOutput, error) {
	err := h.store.DeleteAlert(ctx, input.ID, input.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("alert not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("deleting alert failed: " + err.Error())
	}

	return &DeleteAlertOutput{Body: StatusResponse{Status: "deleted"}}, nil
}

// RegisterAlertRoutes registers alert endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-alert",
		Method:        http.MethodPost,
		Path:          "/api/v1/alerts",
		Summary:       "Create a price alert",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"alerts"},
		Errors: []int{
			http.StatusNotFound,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.CreateAlert)

	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List a user's alerts",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListAlerts)

	huma.Register(api, huma.Operation{
		OperationID: "delete-alert",
		Method:      http.MethodDelete,
		Path:        "/api/v1/alerts/{id}",
		Summary:     "Delete an alert",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.DeleteAlert)
}
