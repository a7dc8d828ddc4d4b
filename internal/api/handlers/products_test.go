package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch-io/pricewatch/internal/api/handlers"
	"github.com/pricewatch-io/pricewatch/internal/store"
	storeMocks "github.com/pricewatch-io/pricewatch/internal/store/mocks"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

func TestProductsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "no filters returns products",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.Anything).
					Return([]domain.Product{
						{ID: "p1", Name: "Acme Widget Pro"},
					}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name:  "name filter",
			query: "?name=widget",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.MatchedBy(func(q *store.ProductQuery) bool {
						return q.NameLike == "widget"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":0`,
		},
		{
			name:  "category and brand filters",
			query: "?category=laptops&brand=acme",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.MatchedBy(func(q *store.ProductQuery) bool {
						return q.Category == "laptops" && q.Brand == "acme"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "pagination params",
			query: "?limit=10&offset=20",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.MatchedBy(func(q *store.ProductQuery) bool {
						return q.Limit == 10 && q.Offset == 20
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"limit":10`,
		},
		{
			name:  "store error returns 500",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListProducts(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db down")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "product query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := storeMocks.NewMockStore(t)
			tt.setupMock(s)
			h := handlers.NewProductsHandler(s)

			_, api := humatest.New(t)
			handlers.RegisterProductRoutes(api, h)

			resp := api.Get("/api/v1/products" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestProductsHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().
			GetProduct(mock.Anything, "p1").
			Return(&domain.Product{ID: "p1", Name: "Acme Widget Pro"}, nil).
			Once()

		_, api := humatest.New(t)
		handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(s))

		resp := api.Get("/api/v1/products/p1")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Acme Widget Pro")
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().
			GetProduct(mock.Anything, "missing").
			Return(nil, store.ErrNotFound).
			Once()

		_, api := humatest.New(t)
		handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(s))

		resp := api.Get("/api/v1/products/missing")
		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "product not found")
	})
}

func TestProductsHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().
			CreateProduct(mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
				return p.Name == "Acme Widget Pro" && p.Brand == "acme"
			})).
			Return(nil).
			Once()

		_, api := humatest.New(t)
		handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(s))

		resp := api.Post("/api/v1/products", map[string]any{
			"name":  "Acme Widget Pro",
			"brand": "acme",
		})
		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), "Acme Widget Pro")
	})

	t.Run("missing name rejected", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)

		_, api := humatest.New(t)
		handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(s))

		resp := api.Post("/api/v1/products", map[string]any{"brand": "acme"})
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("store error returns 500", func(t *testing.T) {
		t.Parallel()

		s := storeMocks.NewMockStore(t)
		s.EXPECT().
			CreateProduct(mock.Anything, mock.Anything).
			Return(errors.New("db down")).
			Once()

		_, api := humatest.New(t)
		handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(s))

		resp := api.Post("/api/v1/products", map[string]any{"name": "Acme Widget Pro"})
		require.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Contains(t, resp.Body.String(), "creating product failed")
	})
}
