package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch-io/pricewatch/internal/api/handlers"
	"github.com/pricewatch-io/pricewatch/internal/engine"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// mockRefresher implements Refresher for testing.
type mockRefresher struct {
	summary      *domain.RefreshSummary
	err          error
	gotIDs       []string
	scheduledRun bool
}

func (m *mockRefresher) RunRefresh(_ context.Context, productIDs []string) (*domain.RefreshSummary, error) {
	m.gotIDs = productIDs
	return m.summary, m.err
}

func (m *mockRefresher) RunScheduledRefresh(_ context.Context) error {
	m.scheduledRun = true
	return m.err
}

func TestRefreshHandler_ExplicitBatch(t *testing.T) {
	t.Parallel()

	r := &mockRefresher{summary: &domain.RefreshSummary{
		ProductsRequested: 2,
		ProductsSucceeded: 2,
		QuotesWritten:     4,
	}}
	h := handlers.NewRefreshHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterRefreshRoutes(api, h)

	resp := api.Post("/api/v1/refresh", map[string]any{
		"product_ids": []string{"p1", "p2"},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"p1", "p2"}, r.gotIDs)
	assert.False(t, r.scheduledRun)
	assert.Contains(t, resp.Body.String(), `"quotes_written":4`)
}

func TestRefreshHandler_EmptyBatchRefreshesTracked(t *testing.T) {
	t.Parallel()

	r := &mockRefresher{}
	h := handlers.NewRefreshHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterRefreshRoutes(api, h)

	resp := api.Post("/api/v1/refresh", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, r.scheduledRun)
	assert.Contains(t, resp.Body.String(), "refresh completed")
}

func TestRefreshHandler_InvalidBatch(t *testing.T) {
	t.Parallel()

	r := &mockRefresher{err: engine.ErrInvalidBatch}
	h := handlers.NewRefreshHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterRefreshRoutes(api, h)

	resp := api.Post("/api/v1/refresh", map[string]any{
		"product_ids": []string{"  "},
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestRefreshHandler_StorageUnavailable(t *testing.T) {
	t.Parallel()

	r := &mockRefresher{err: engine.ErrStorageUnavailable}
	h := handlers.NewRefreshHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterRefreshRoutes(api, h)

	resp := api.Post("/api/v1/refresh", map[string]any{
		"product_ids": []string{"p1"},
	})
	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestRefreshHandler_Error(t *testing.T) {
	t.Parallel()

	r := &mockRefresher{err: errors.New("db connection lost")}
	h := handlers.NewRefreshHandler(r)

	_, api := humatest.New(t)
	handlers.RegisterRefreshRoutes(api, h)

	resp := api.Post("/api/v1/refresh", map[string]any{
		"product_ids": []string{"p1"},
	})
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "refresh failed")
}
