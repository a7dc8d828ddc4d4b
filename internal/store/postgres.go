package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateProduct inserts a new catalog product.
func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	args := pgx.NamedArgs{
		"name":        p.Name,
		"category":    p.Category,
		"brand":       p.Brand,
		"model":       p.Model,
		"description": p.Description,
		"image_url":   p.ImageURL,
	}

	err := s.pool.QueryRow(ctx, queryCreateProduct, args).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

// GetProduct retrieves a product by its ID.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

// GetProductsByIDs retrieves all products matching the given ids in one
// round trip. Unknown ids are simply absent from the result.
func (s *PostgresStore) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, queryGetProductsByIDs, ids)
	if err != nil {
		return nil, fmt.Errorf("querying products by ids: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListProducts queries the catalog with optional filters, returning
// results and total count.
func (s *PostgresStore) ListProducts(
	ctx context.Context,
	q *ProductQuery,
) ([]domain.Product, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// CreateStore inserts a new retailer.
func (s *PostgresStore) CreateStore(ctx context.Context, st *domain.Store) error {
	args := pgx.NamedArgs{
		"name":   st.Name,
		"slug":   st.Slug,
		"url":    st.URL,
		"active": st.Active,
	}

	err := s.pool.QueryRow(ctx, queryCreateStore, args).Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	return nil
}

// ListStores returns all retailers, optionally filtered to active only.
func (s *PostgresStore) ListStores(ctx context.Context, activeOnly bool) ([]domain.Store, error) {
	query := queryListStoresAll
	if activeOnly {
		query = queryListStoresActive
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var st domain.Store
		if err := rows.Scan(
			&st.ID, &st.Name, &st.Slug, &st.URL, &st.Active, &st.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		stores = append(stores, st)
	}

	return stores, rows.Err()
}

// InsertQuote appends a price observation. Quotes are never updated.
func (s *PostgresStore) InsertQuote(ctx context.Context, q *domain.PriceQuote) error {
	args := pgx.NamedArgs{
		"product_id":    q.ProductID,
		"store_id":      q.StoreID,
		"price":         q.Price,
		"currency":      q.Currency,
		"availability":  string(q.Availability),
		"title":         q.Title,
		"source_url":    q.SourceURL,
		"shipping_cost": q.ShippingCost,
		"observed_at":   q.ObservedAt,
	}

	if _, err := s.pool.Exec(ctx, queryInsertQuote, args); err != nil {
		return fmt.Errorf("inserting quote: %w", err)
	}
	return nil
}

// LatestQuotes returns the newest quote per (product, store) pair for the
// given products in one round trip.
func (s *PostgresStore) LatestQuotes(ctx context.Context, productIDs []string) ([]domain.PriceQuote, error) {
	rows, err := s.pool.Query(ctx, queryLatestQuotes, productIDs)
	if err != nil {
		return nil, fmt.Errorf("querying latest quotes: %w", err)
	}
	defer rows.Close()

	return scanQuotes(rows)
}

// QuoteHistory returns quotes for a (product, store) pair, newest first.
func (s *PostgresStore) QuoteHistory(
	ctx context.Context,
	productID, storeID string,
	limit int,
) ([]domain.PriceQuote, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryQuoteHistory, productID, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying quote history: %w", err)
	}
	defer rows.Close()

	return scanQuotes(rows)
}

// CreateAlert inserts a new active alert.
func (s *PostgresStore) CreateAlert(ctx context.Context, a *domain.PriceAlert) error {
	err := s.pool.QueryRow(ctx, queryCreateAlert,
		a.UserID, a.ProductID, a.TargetPrice,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating alert: %w", err)
	}
	a.IsActive = true
	return nil
}

// ListActiveAlertsByProducts returns all active alerts for the given
// products in one round trip.
func (s *PostgresStore) ListActiveAlertsByProducts(
	ctx context.Context,
	productIDs []string,
) ([]domain.PriceAlert, error) {
	return s.queryAlerts(ctx, queryListActiveAlertsByProducts, productIDs)
}

// ListAlertsByUser returns all alerts owned by a user, newest first.
func (s *PostgresStore) ListAlertsByUser(ctx context.Context, userID string) ([]domain.PriceAlert, error) {
	return s.queryAlerts(ctx, queryListAlertsByUser, userID)
}

// DeactivateAlert flips is_active to false only if it is still true.
// Returns whether this call won the transition; a false result means a
// concurrent job already fired the alert.
func (s *PostgresStore) DeactivateAlert(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, queryDeactivateAlert, id)
	if err != nil {
		return false, fmt.Errorf("deactivating alert: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAlert removes an alert owned by the given user.
func (s *PostgresStore) DeleteAlert(ctx context.Context, id, userID string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteAlert, id, userID)
	if err != nil {
		return fmt.Errorf("deleting alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateFavorite adds a product to a user's watch list, silently ignoring
// duplicates.
func (s *PostgresStore) CreateFavorite(ctx context.Context, f *domain.Favorite) error {
	err := s.pool.QueryRow(ctx, queryCreateFavorite,
		f.UserID, f.ProductID,
	).Scan(&f.ID, &f.CreatedAt)

	// ON CONFLICT DO NOTHING returns no rows; treat as success.
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating favorite: %w", err)
	}
	return nil
}

// ListFavoritesByUser returns a user's watch list, newest first.
func (s *PostgresStore) ListFavoritesByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	rows, err := s.pool.Query(ctx, queryListFavoritesByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ProductID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// DeleteFavorite removes a favorite owned by the given user.
func (s *PostgresStore) DeleteFavorite(ctx context.Context, id, userID string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteFavorite, id, userID)
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTrackedProductIDs returns ids of products with at least one active
// alert or favorite.
func (s *PostgresStore) ListTrackedProductIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListTrackedProductIDs)
	if err != nil {
		return nil, fmt.Errorf("querying tracked products: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning product id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// InsertJobRun records the start of a job execution.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun records the outcome of a job execution.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id, status, errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns recent runs of a job, newest first.
func (s *PostgresStore) ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the most recent run of each job.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// queryAlerts is a helper for alert queries.
func (s *PostgresStore) queryAlerts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.PriceAlert, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.PriceAlert
	for rows.Next() {
		var a domain.PriceAlert
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.ProductID, &a.TargetPrice,
			&a.IsActive, &a.CreatedAt, &a.FiredAt,
		); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanProduct scans a full product row.
func scanProduct(row scannable, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Brand,
		&p.Model, &p.Description, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

// scanProducts scans product rows into a slice.
func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// scanQuotes scans quote rows into a slice.
func scanQuotes(rows pgx.Rows) ([]domain.PriceQuote, error) {
	var quotes []domain.PriceQuote
	for rows.Next() {
		var q domain.PriceQuote
		if err := rows.Scan(
			&q.ProductID, &q.StoreID, &q.Price, &q.Currency, &q.Availability,
			&q.Title, &q.SourceURL, &q.ShippingCost, &q.ObservedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// scanJobRuns scans job run rows into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
