//go:build integration

package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pricewatch-io/pricewatch/internal/store"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("pricewatch_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func createProduct(t *testing.T, s *store.PostgresStore, name string) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:     name,
		Category: "electronics",
		Brand:    "Acme",
		Model:    "W-100",
	}
	require.NoError(t, s.CreateProduct(context.Background(), p))
	return p
}

func createStore(t *testing.T, s *store.PostgresStore, slug string) *domain.Store {
	t.Helper()
	st := &domain.Store{
		Name:   "Store " + slug,
		Slug:   slug,
		URL:    "https://" + slug + ".example.com",
		Active: true,
	}
	require.NoError(t, s.CreateStore(context.Background(), st))
	return st
}

func insertQuote(
	t *testing.T,
	s *store.PostgresStore,
	productID, storeID, price string,
	observed time.Time,
) {
	t.Helper()
	require.NoError(t, s.InsertQuote(context.Background(), &domain.PriceQuote{
		ProductID:    productID,
		StoreID:      storeID,
		Price:        decimal.RequireFromString(price),
		Currency:     "USD",
		Availability: domain.AvailabilityInStock,
		ObservedAt:   observed,
	}))
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_Products(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		p := createProduct(t, s, "Acme Widget")
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())

		got, err := s.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Name, got.Name)
		assert.Equal(t, p.Brand, got.Brand)
	})

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		_, err := s.GetProduct(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("batch get skips unknown ids", func(t *testing.T) {
		p1 := createProduct(t, s, "Batch One")
		p2 := createProduct(t, s, "Batch Two")

		got, err := s.GetProductsByIDs(ctx, []string{
			p1.ID, p2.ID, "00000000-0000-0000-0000-000000000000",
		})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("list with name filter", func(t *testing.T) {
		createProduct(t, s, "Filterable Gizmo")

		got, total, err := s.ListProducts(ctx, &store.ProductQuery{NameLike: "filterable"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, "Filterable Gizmo", got[0].Name)
	})
}

func TestPostgresStore_Quotes(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := createProduct(t, s, "Quoted Widget")
	st1 := createStore(t, s, "shop-a")
	st2 := createStore(t, s, "shop-b")

	base := time.Now().UTC().Truncate(time.Microsecond)

	insertQuote(t, s, p.ID, st1.ID, "50.00", base.Add(-2*time.Hour))
	insertQuote(t, s, p.ID, st1.ID, "45.00", base.Add(-1*time.Hour))
	insertQuote(t, s, p.ID, st2.ID, "48.00", base.Add(-90*time.Minute))

	t.Run("latest quote per store", func(t *testing.T) {
		latest, err := s.LatestQuotes(ctx, []string{p.ID})
		require.NoError(t, err)
		require.Len(t, latest, 2)

		byStore := map[string]domain.PriceQuote{}
		for _, q := range latest {
			byStore[q.StoreID] = q
		}
		assert.True(t, byStore[st1.ID].Price.Equal(decimal.RequireFromString("45.00")))
		assert.True(t, byStore[st2.ID].Price.Equal(decimal.RequireFromString("48.00")))
	})

	t.Run("equal timestamps resolve by insertion order", func(t *testing.T) {
		ts := base.Add(time.Hour)
		insertQuote(t, s, p.ID, st1.ID, "44.00", ts)
		insertQuote(t, s, p.ID, st1.ID, "43.00", ts)

		latest, err := s.LatestQuotes(ctx, []string{p.ID})
		require.NoError(t, err)

		var got domain.PriceQuote
		for _, q := range latest {
			if q.StoreID == st1.ID {
				got = q
			}
		}
		assert.True(t, got.Price.Equal(decimal.RequireFromString("43.00")),
			"latest = %s, want the last inserted quote", got.Price)
	})

	t.Run("history is newest first", func(t *testing.T) {
		history, err := s.QuoteHistory(ctx, p.ID, st1.ID, 10)
		require.NoError(t, err)
		require.Len(t, history, 4)

		for i := 1; i < len(history); i++ {
			assert.False(t, history[i-1].ObservedAt.Before(history[i].ObservedAt))
		}
	})

	t.Run("history respects limit", func(t *testing.T) {
		history, err := s.QuoteHistory(ctx, p.ID, st1.ID, 2)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})
}

func TestPostgresStore_Alerts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := createProduct(t, s, "Alerted Widget")

	t.Run("create and list active", func(t *testing.T) {
		a := &domain.PriceAlert{
			UserID:      "user-1",
			ProductID:   p.ID,
			TargetPrice: decimal.RequireFromString("40.00"),
		}
		require.NoError(t, s.CreateAlert(ctx, a))
		assert.NotEmpty(t, a.ID)
		assert.True(t, a.IsActive)

		active, err := s.ListActiveAlertsByProducts(ctx, []string{p.ID})
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.True(t, active[0].TargetPrice.Equal(a.TargetPrice))
	})

	t.Run("deactivate wins exactly once", func(t *testing.T) {
		a := &domain.PriceAlert{
			UserID:      "user-2",
			ProductID:   p.ID,
			TargetPrice: decimal.RequireFromString("35.00"),
		}
		require.NoError(t, s.CreateAlert(ctx, a))

		won, err := s.DeactivateAlert(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = s.DeactivateAlert(ctx, a.ID)
		require.NoError(t, err)
		assert.False(t, won)

		alerts, err := s.ListAlertsByUser(ctx, "user-2")
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.False(t, alerts[0].IsActive)
		assert.NotNil(t, alerts[0].FiredAt)
	})

	t.Run("concurrent deactivations race to a single winner", func(t *testing.T) {
		a := &domain.PriceAlert{
			UserID:      "user-race",
			ProductID:   p.ID,
			TargetPrice: decimal.RequireFromString("25.00"),
		}
		require.NoError(t, s.CreateAlert(ctx, a))

		const attempts = 8
		start := make(chan struct{})
		var wg sync.WaitGroup
		var wins atomic.Int32

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				won, err := s.DeactivateAlert(ctx, a.ID)
				assert.NoError(t, err)
				if won {
					wins.Add(1)
				}
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
	})

	t.Run("delete scoped to owner", func(t *testing.T) {
		a := &domain.PriceAlert{
			UserID:      "user-3",
			ProductID:   p.ID,
			TargetPrice: decimal.RequireFromString("30.00"),
		}
		require.NoError(t, s.CreateAlert(ctx, a))

		assert.ErrorIs(t, s.DeleteAlert(ctx, a.ID, "someone-else"), store.ErrNotFound)
		require.NoError(t, s.DeleteAlert(ctx, a.ID, "user-3"))
	})
}

func TestPostgresStore_Favorites(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := createProduct(t, s, "Favorited Widget")

	f := &domain.Favorite{UserID: "user-1", ProductID: p.ID}
	require.NoError(t, s.CreateFavorite(ctx, f))
	assert.NotEmpty(t, f.ID)

	// Duplicate is a no-op.
	require.NoError(t, s.CreateFavorite(ctx, &domain.Favorite{UserID: "user-1", ProductID: p.ID}))

	favorites, err := s.ListFavoritesByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	require.NoError(t, s.DeleteFavorite(ctx, f.ID, "user-1"))
	assert.ErrorIs(t, s.DeleteFavorite(ctx, f.ID, "user-1"), store.ErrNotFound)
}

func TestPostgresStore_TrackedProducts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	alerted := createProduct(t, s, "Tracked by alert")
	favorited := createProduct(t, s, "Tracked by favorite")
	createProduct(t, s, "Untracked")

	require.NoError(t, s.CreateAlert(ctx, &domain.PriceAlert{
		UserID:      "user-1",
		ProductID:   alerted.ID,
		TargetPrice: decimal.RequireFromString("10.00"),
	}))
	require.NoError(t, s.CreateFavorite(ctx, &domain.Favorite{
		UserID:    "user-1",
		ProductID: favorited.ID,
	}))

	ids, err := s.ListTrackedProductIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{alerted.ID, favorited.ID}, ids)
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "refresh")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, s.CompleteJobRun(ctx, id, "success", "", 12))

	runs, err := s.ListJobRuns(ctx, "refresh", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "success", runs[0].Status)
	require.NotNil(t, runs[0].RowsAffected)
	assert.Equal(t, 12, *runs[0].RowsAffected)
	assert.NotNil(t, runs[0].CompletedAt)

	latest, err := s.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}
