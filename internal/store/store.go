// Package store defines the datastore abstraction for pricewatch.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running
// database.
package store

import (
	"context"
	"errors"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ProductQuery defines optional filters for catalog queries.
type ProductQuery struct {
	NameLike string
	Category string
	Brand    string
	Limit    int // default 50
	Offset   int
}

// Store defines all data access operations for pricewatch.
//
// Reads used by the refresh pipeline are batch-oriented: one query per
// entity type keyed by the full product id set, never one round trip per
// product.
type Store interface {
	// Catalog
	CreateProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	ListProducts(ctx context.Context, q *ProductQuery) ([]domain.Product, int, error)

	// Stores
	CreateStore(ctx context.Context, s *domain.Store) error
	ListStores(ctx context.Context, activeOnly bool) ([]domain.Store, error)

	// Quotes (append-only snapshot history)
	InsertQuote(ctx context.Context, q *domain.PriceQuote) error
	LatestQuotes(ctx context.Context, productIDs []string) ([]domain.PriceQuote, error)
	QuoteHistory(ctx context.Context, productID, storeID string, limit int) ([]domain.PriceQuote, error)

	// Alerts
	CreateAlert(ctx context.Context, a *domain.PriceAlert) error
	ListActiveAlertsByProducts(ctx context.Context, productIDs []string) ([]domain.PriceAlert, error)
	ListAlertsByUser(ctx context.Context, userID string) ([]domain.PriceAlert, error)
	// DeactivateAlert flips is_active to false only if it is still true,
	// returning whether this call won the transition. Guarantees
	// at-most-once firing under concurrent refresh jobs.
	DeactivateAlert(ctx context.Context, id string) (bool, error)
	DeleteAlert(ctx context.Context, id, userID string) error

	// Favorites
	CreateFavorite(ctx context.Context, f *domain.Favorite) error
	ListFavoritesByUser(ctx context.Context, userID string) ([]domain.Favorite, error)
	DeleteFavorite(ctx context.Context, id, userID string) error

	// ListTrackedProductIDs returns ids of products with at least one
	// active alert or favorite; the scheduler refreshes exactly these.
	ListTrackedProductIDs(ctx context.Context) ([]string, error)

	// Jobs
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id, status, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
