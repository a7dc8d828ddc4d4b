package adapter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch-io/pricewatch/internal/adapter"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

func descriptor() domain.ProductDescriptor {
	return domain.ProductDescriptor{
		ProductID: "p1",
		Name:      "ThinkPad X1 Carbon",
		Brand:     "Lenovo",
		Model:     "X1 Carbon Gen 12",
	}
}

func TestHTTPAdapter_FetchQuotes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Lenovo X1 Carbon Gen 12", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{"sku": "A1", "title": "X1 Carbon G12", "price": "1499.99", "currency": "USD", "inStock": true, "productUrl": "https://shop.test/a1", "shippingCost": "0.00"},
				{"sku": "A2", "title": "X1 Carbon G12 refurb", "price": "not-a-price", "currency": "USD", "productUrl": "https://shop.test/a2"},
				{"sku": "A3", "title": "X1 Carbon G12 open box", "price": "1199.00", "currency": "USD", "inStock": false, "productUrl": "https://shop.test/a3"}
			],
			"total": 3
		}`))
	}))
	defer srv.Close()

	a := adapter.NewHTTPAdapter("shopstream", "store-1", srv.URL, "secret")

	quotes, err := a.FetchQuotes(context.Background(), descriptor(), 5)
	require.NoError(t, err)
	require.Len(t, quotes, 2) // unparseable price row skipped

	assert.Equal(t, "p1", quotes[0].ProductID)
	assert.Equal(t, "store-1", quotes[0].StoreID)
	assert.True(t, quotes[0].Price.Equal(decimal.RequireFromString("1499.99")))
	assert.Equal(t, domain.AvailabilityInStock, quotes[0].Availability)
	require.NotNil(t, quotes[0].ShippingCost)
	assert.True(t, quotes[0].ShippingCost.IsZero())
	assert.WithinDuration(t, time.Now(), quotes[0].ObservedAt, 5*time.Second)

	assert.Equal(t, domain.AvailabilityOutOfStock, quotes[1].Availability)
}

func TestHTTPAdapter_TruncatesToMaxResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{"sku": "A1", "title": "one", "price": "10.00", "currency": "USD", "productUrl": "u1"},
				{"sku": "A2", "title": "two", "price": "11.00", "currency": "USD", "productUrl": "u2"},
				{"sku": "A3", "title": "three", "price": "12.00", "currency": "USD", "productUrl": "u3"}
			],
			"total": 3
		}`))
	}))
	defer srv.Close()

	a := adapter.NewHTTPAdapter("shopstream", "store-1", srv.URL, "")

	quotes, err := a.FetchQuotes(context.Background(), descriptor(), 2)
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
}

func TestHTTPAdapter_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	a := adapter.NewHTTPAdapter("shopstream", "store-1", srv.URL, "")

	_, err := a.FetchQuotes(context.Background(), descriptor(), 5)
	require.ErrorIs(t, err, adapter.ErrUnavailable)
}

func TestHTTPAdapter_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := adapter.NewHTTPAdapter("shopstream", "store-1", srv.URL, "",
		adapter.WithFetchTimeout(20*time.Millisecond),
	)

	_, err := a.FetchQuotes(context.Background(), descriptor(), 5)
	require.ErrorIs(t, err, adapter.ErrUnavailable)
}

func TestHTTPAdapter_DailyLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [], "total": 0}`))
	}))
	defer srv.Close()

	a := adapter.NewHTTPAdapter("shopstream", "store-1", srv.URL, "",
		adapter.WithRateLimiter(adapter.NewRateLimiter(100, 10, 1)),
	)

	_, err := a.FetchQuotes(context.Background(), descriptor(), 5)
	require.NoError(t, err)

	_, err = a.FetchQuotes(context.Background(), descriptor(), 5)
	require.ErrorIs(t, err, adapter.ErrUnavailable)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	a := adapter.NewHTTPAdapter("shopstream", "store-1", "http://localhost", "")
	b := adapter.NewHTTPAdapter("pricegrid", "store-2", "http://localhost", "")

	r := adapter.NewRegistry(a)
	r.Register(b)

	require.Equal(t, 2, r.Len())
	assert.Equal(t, "shopstream", r.All()[0].Name())
	assert.Equal(t, "pricegrid", r.All()[1].Name())
}
