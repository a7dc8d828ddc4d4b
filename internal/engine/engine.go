// Package engine implements the price refresh pipeline: fan out to store
// adapters, detect changes against the snapshot history, match alerts,
// and hand off notifications.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/pricewatch-io/pricewatch/internal/adapter"
	"github.com/pricewatch-io/pricewatch/internal/events"
	"github.com/pricewatch-io/pricewatch/internal/metrics"
	"github.com/pricewatch-io/pricewatch/internal/notify"
	"github.com/pricewatch-io/pricewatch/internal/store"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

const (
	defaultWorkers           = 8
	defaultMaxQuotesPerStore = 5
	defaultRetryBackoff      = 500 * time.Millisecond

	refreshJobName = "refresh"
)

var (
	// ErrInvalidBatch is returned for an empty or malformed product id list.
	ErrInvalidBatch = errors.New("invalid refresh batch")

	// ErrStorageUnavailable is returned when every snapshot write in a job
	// failed; partial write failures are contained per product instead.
	ErrStorageUnavailable = errors.New("snapshot storage unavailable")
)

var tracer = otel.Tracer("github.com/pricewatch-io/pricewatch/internal/engine")

// Engine orchestrates refresh cycles over a batch of products.
type Engine struct {
	store     store.Store
	adapters  *adapter.Registry
	notifier  notify.Notifier
	publisher events.Publisher
	log       *slog.Logger

	workers           int
	maxQuotesPerStore int
	retryBackoff      time.Duration
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	reg *adapter.Registry,
	n notify.Notifier,
	p events.Publisher,
	opts ...Option,
) *Engine {
	eng := &Engine{
		store:             s,
		adapters:          reg,
		notifier:          n,
		publisher:         p,
		log:               slog.Default(),
		workers:           defaultWorkers,
		maxQuotesPerStore: defaultMaxQuotesPerStore,
		retryBackoff:      defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithWorkers bounds the concurrent adapter fetches per job.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithMaxQuotesPerStore caps quotes requested from each adapter per
// product.
func WithMaxQuotesPerStore(n int) Option {
	return func(e *Engine) {
		e.maxQuotesPerStore = n
	}
}

// WithRetryBackoff sets the delay before the single snapshot write retry.
func WithRetryBackoff(d time.Duration) Option {
	return func(e *Engine) {
		e.retryBackoff = d
	}
}

// fetchKey identifies one (product, store) slot in a refresh cycle.
type fetchKey struct {
	productID string
	storeID   string
}

// RunScheduledRefresh refreshes every tracked product (products with an
// active alert or favorite). Used by the cron scheduler.
func (eng *Engine) RunScheduledRefresh(ctx context.Context) error {
	ids, err := eng.store.ListTrackedProductIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing tracked products: %w", err)
	}
	if len(ids) == 0 {
		eng.log.Debug("no tracked products, skipping refresh")
		return nil
	}

	_, err = eng.RunRefresh(ctx, ids)
	return err
}

// RunRefresh executes one refresh cycle over the given products and
// returns a summary. Per-product and per-store failures are contained and
// counted; only a malformed batch or storage-wide unavailability is
// returned as an error. On deadline expiry the already-persisted work is
// kept and a partial summary is returned.
func (eng *Engine) RunRefresh(ctx context.Context, productIDs []string) (*domain.RefreshSummary, error) {
	if err := validateBatch(productIDs); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	}()

	ctx, span := tracer.Start(ctx, "engine.RunRefresh")
	span.SetAttributes(attribute.Int("refresh.products_requested", len(productIDs)))
	defer span.End()

	jobID := eng.startJobRun(ctx)

	summary := &domain.RefreshSummary{
		JobID:             jobID,
		ProductsRequested: len(productIDs),
		ChangesByClass:    make(map[domain.Classification]int),
		StartedAt:         start,
	}

	products, lastByKey, alertsByProduct, err := eng.loadBatch(ctx, productIDs)
	if err != nil {
		eng.completeJobRun(context.WithoutCancel(ctx), jobID, "failed", err.Error(), 0)
		return nil, err
	}

	quotesByProduct := eng.fetchAll(ctx, productIDs, products)

	var (
		intents     []domain.NotificationIntent
		allChanges  []domain.ChangeEvent
		writesTried int
	)

	for _, id := range productIDs {
		if ctx.Err() != nil {
			// Deadline: remaining products count as failed, persisted
			// state stays.
			summary.ProductsFailed = summary.ProductsRequested - summary.ProductsSucceeded
			break
		}

		prod, known := products[id]
		quotes := quotesByProduct[id]
		if !known || len(quotes) == 0 {
			summary.ProductsFailed++
			metrics.RefreshProductsTotal.WithLabelValues("failed").Inc()
			continue
		}

		persisted, changes, tried := eng.reconcileProduct(ctx, id, quotes, lastByKey)
		writesTried += tried
		summary.QuotesWritten += len(persisted)
		summary.QuotesDropped += tried - len(persisted)
		for i := range changes {
			summary.ChangesByClass[changes[i].Classification]++
			metrics.ChangeEventsTotal.WithLabelValues(string(changes[i].Classification)).Inc()
		}
		allChanges = append(allChanges, changes...)

		if len(persisted) == 0 {
			summary.ProductsFailed++
			metrics.RefreshProductsTotal.WithLabelValues("failed").Inc()
			continue
		}
		summary.ProductsSucceeded++
		metrics.RefreshProductsTotal.WithLabelValues("succeeded").Inc()

		intents = append(intents, eng.matchProduct(ctx, prod, persisted, alertsByProduct[id])...)
	}

	if writesTried > 0 && summary.QuotesWritten == 0 {
		eng.completeJobRun(context.WithoutCancel(ctx), jobID, "failed", ErrStorageUnavailable.Error(), 0)
		return nil, ErrStorageUnavailable
	}

	eng.publishChanges(ctx, allChanges)
	summary.NotificationsSent = eng.dispatch(ctx, intents)

	summary.CompletedAt = time.Now()
	eng.completeJobRun(context.WithoutCancel(ctx), jobID, "success", "", summary.QuotesWritten)

	eng.log.Info("refresh complete",
		"requested", summary.ProductsRequested,
		"succeeded", summary.ProductsSucceeded,
		"failed", summary.ProductsFailed,
		"quotes_written", summary.QuotesWritten,
		"notifications_sent", summary.NotificationsSent,
	)

	return summary, nil
}

func validateBatch(productIDs []string) error {
	if len(productIDs) == 0 {
		return fmt.Errorf("%w: empty product id list", ErrInvalidBatch)
	}
	for _, id := range productIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: blank product id", ErrInvalidBatch)
		}
	}
	return nil
}

// loadBatch reads everything the cycle needs in one query per entity
// type, keyed by the full id set.
func (eng *Engine) loadBatch(ctx context.Context, productIDs []string) (
	map[string]*domain.Product,
	map[fetchKey]domain.PriceQuote,
	map[string][]domain.PriceAlert,
	error,
) {
	prods, err := eng.store.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading products: %w", err)
	}
	products := make(map[string]*domain.Product, len(prods))
	for i := range prods {
		products[prods[i].ID] = &prods[i]
	}

	last, err := eng.store.LatestQuotes(ctx, productIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading latest quotes: %w", err)
	}
	lastByKey := make(map[fetchKey]domain.PriceQuote, len(last))
	for i := range last {
		lastByKey[fetchKey{last[i].ProductID, last[i].StoreID}] = last[i]
	}

	alerts, err := eng.store.ListActiveAlertsByProducts(ctx, productIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading active alerts: %w", err)
	}
	alertsByProduct := make(map[string][]domain.PriceAlert)
	for i := range alerts {
		a := alerts[i]
		if !a.Valid() {
			eng.log.Warn("skipping alert with invalid threshold",
				"alert_id", a.ID,
				"target_price", a.TargetPrice.String(),
			)
			continue
		}
		alertsByProduct[a.ProductID] = append(alertsByProduct[a.ProductID], a)
	}

	return products, lastByKey, alertsByProduct, nil
}

// fetchAll fans out one fetch per (product, adapter) on a bounded worker
// pool. Adapter failures are logged and contribute zero quotes; they
// never abort the batch.
func (eng *Engine) fetchAll(
	ctx context.Context,
	productIDs []string,
	products map[string]*domain.Product,
) map[string][]domain.PriceQuote {
	ctx, span := tracer.Start(ctx, "engine.fetchAll")
	defer span.End()

	type result struct {
		productID string
		quotes    []domain.PriceQuote
	}

	results := make(chan result, len(productIDs)*eng.adapters.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.workers)

	for _, id := range productIDs {
		prod, ok := products[id]
		if !ok {
			eng.log.Warn("product not in catalog, skipping", "product_id", id)
			continue
		}
		desc := prod.Descriptor()

		for _, a := range eng.adapters.All() {
			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}
				quotes, err := a.FetchQuotes(gctx, desc, eng.maxQuotesPerStore)
				if err != nil {
					eng.log.Warn("adapter fetch failed",
						"adapter", a.Name(),
						"product_id", desc.ProductID,
						"error", err,
					)
					return nil
				}
				results <- result{productID: desc.ProductID, quotes: quotes}
				return nil
			})
		}
	}

	_ = g.Wait()
	close(results)

	quotesByProduct := make(map[string][]domain.PriceQuote)
	for r := range results {
		quotesByProduct[r.productID] = append(quotesByProduct[r.productID], r.quotes...)
	}
	return quotesByProduct
}

// reconcileProduct runs each quote through the change detector and
// persists it. Every observation is retained regardless of
// classification; that keeps the audit trail complete and feeds the price
// history chart. Returns the persisted quotes, their change events, and
// the number of writes attempted.
func (eng *Engine) reconcileProduct(
	ctx context.Context,
	productID string,
	quotes []domain.PriceQuote,
	lastByKey map[fetchKey]domain.PriceQuote,
) ([]domain.PriceQuote, []domain.ChangeEvent, int) {
	persisted := make([]domain.PriceQuote, 0, len(quotes))
	changes := make([]domain.ChangeEvent, 0, len(quotes))

	for i := range quotes {
		q := quotes[i]

		var last *domain.PriceQuote
		if prev, ok := lastByKey[fetchKey{productID, q.StoreID}]; ok {
			last = &prev
		}
		ev := Detect(productID, q.StoreID, q, last)

		if err := eng.persistQuote(ctx, &q); err != nil {
			eng.log.Error("dropping quote after failed write",
				"product_id", productID,
				"store_id", q.StoreID,
				"error", err,
			)
			metrics.QuotesDroppedTotal.Inc()
			continue
		}
		metrics.QuotesWrittenTotal.Inc()

		// The newest persisted quote becomes the comparison point for any
		// further quote from the same store in this batch.
		lastByKey[fetchKey{productID, q.StoreID}] = q

		persisted = append(persisted, q)
		changes = append(changes, ev)
	}

	return persisted, changes, len(quotes)
}

// persistQuote writes a quote, retrying once with backoff on failure.
func (eng *Engine) persistQuote(ctx context.Context, q *domain.PriceQuote) error {
	err := eng.store.InsertQuote(ctx, q)
	if err == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("inserting quote: %w", err)
	case <-time.After(eng.retryBackoff):
	}

	if err := eng.store.InsertQuote(ctx, q); err != nil {
		return fmt.Errorf("inserting quote (after retry): %w", err)
	}
	return nil
}

// matchProduct matches persisted quotes against the product's alerts and
// deactivates each matched alert via compare-and-set. Only alerts whose
// CAS this job won become intents, so two overlapping refresh cycles fire
// each alert at most once.
func (eng *Engine) matchProduct(
	ctx context.Context,
	prod *domain.Product,
	persisted []domain.PriceQuote,
	alerts []domain.PriceAlert,
) []domain.NotificationIntent {
	if len(alerts) == 0 {
		return nil
	}

	matched := Match(prod.ID, persisted, alerts)

	won := make([]domain.NotificationIntent, 0, len(matched))
	for i := range matched {
		ok, err := eng.store.DeactivateAlert(ctx, matched[i].AlertID)
		if err != nil {
			eng.log.Error("deactivating alert failed",
				"alert_id", matched[i].AlertID,
				"error", err,
			)
			continue
		}
		if !ok {
			// Another run already fired this alert.
			continue
		}
		matched[i].ProductName = prod.Name
		won = append(won, matched[i])
		metrics.AlertsFiredTotal.Inc()
	}
	return won
}

// publishChanges emits change events. Best-effort: failures are logged
// and counted, never propagated.
func (eng *Engine) publishChanges(ctx context.Context, changes []domain.ChangeEvent) {
	if len(changes) == 0 {
		return
	}
	if err := eng.publisher.PublishChanges(ctx, changes); err != nil {
		eng.log.Error("publishing change events failed", "count", len(changes), "error", err)
		metrics.EventPublishFailuresTotal.Inc()
	}
}

// dispatch hands all intents to the notifier in one batch call and
// returns the number delivered. Dispatch failures do not roll back the
// alert deactivations already persisted.
func (eng *Engine) dispatch(ctx context.Context, intents []domain.NotificationIntent) int {
	if len(intents) == 0 {
		return 0
	}

	sent := 0
	for _, res := range eng.notifier.Dispatch(ctx, intents) {
		if res.Delivered {
			sent++
			continue
		}
		eng.log.Error("notification dispatch failed", "alert_id", res.AlertID, "error", res.Err)
		metrics.NotificationFailuresTotal.Inc()
	}
	return sent
}

func (eng *Engine) startJobRun(ctx context.Context) string {
	id, err := eng.store.InsertJobRun(ctx, refreshJobName)
	if err != nil {
		eng.log.Warn("recording job run failed", "error", err)
		return ""
	}
	return id
}

func (eng *Engine) completeJobRun(ctx context.Context, id, status, errText string, rows int) {
	if id == "" {
		return
	}
	if err := eng.store.CompleteJobRun(ctx, id, status, errText, rows); err != nil {
		eng.log.Warn("completing job run failed", "job_id", id, "error", err)
	}
}
