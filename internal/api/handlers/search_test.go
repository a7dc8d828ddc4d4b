package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch-io/pricewatch/internal/api/handlers"
	"github.com/pricewatch-io/pricewatch/internal/search"
	"github.com/pricewatch-io/pricewatch/internal/store"
	storeMocks "github.com/pricewatch-io/pricewatch/internal/store/mocks"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

func TestSearchHandler_Search(t *testing.T) {
	t.Parallel()

	t.Run("intent filters reach the catalog query", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().
			ListProducts(mock.Anything, mock.MatchedBy(func(q *store.ProductQuery) bool {
				return q.NameLike == "laptop" && q.Category == "computers"
			})).
			Return([]domain.Product{
				{ID: "p1", Name: "Acme Gaming Laptop 15"},
			}, 1, nil).
			Once()

		h := handlers.NewSearchHandler(search.NewKeywordAnalyzer(), s)

		_, api := humatest.New(t)
		handlers.RegisterSearchRoutes(api, h)

		resp := api.Get("/api/v1/search?q=gaming+laptop+under+800")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Acme Gaming Laptop 15")
		assert.Contains(t, resp.Body.String(), `"intent"`)
		assert.Contains(t, resp.Body.String(), `"total":1`)
	})

	t.Run("keyword fallback when no product type detected", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().
			ListProducts(mock.Anything, mock.MatchedBy(func(q *store.ProductQuery) bool {
				return q.NameLike == "widget"
			})).
			Return(nil, 0, nil).
			Once()

		h := handlers.NewSearchHandler(search.NewKeywordAnalyzer(), s)

		_, api := humatest.New(t)
		handlers.RegisterSearchRoutes(api, h)

		resp := api.Get("/api/v1/search?q=widget")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"products":[]`)
	})

	t.Run("missing query rejected", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)
		h := handlers.NewSearchHandler(search.NewKeywordAnalyzer(), s)

		_, api := humatest.New(t)
		handlers.RegisterSearchRoutes(api, h)

		resp := api.Get("/api/v1/search")
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}
