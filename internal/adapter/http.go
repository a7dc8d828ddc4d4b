package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pricewatch-io/pricewatch/internal/metrics"
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

const defaultFetchTimeout = 10 * time.Second

// HTTPAdapter quotes a retailer through its JSON search API. One instance
// is configured per retailer (base URL, API key, rate limits); the same
// implementation serves every storefront exposing this kind of endpoint.
type HTTPAdapter struct {
	name        string
	storeID     string
	client      *resty.Client
	rateLimiter *RateLimiter
	timeout     time.Duration
}

// HTTPOption configures the HTTPAdapter.
type HTTPOption func(*HTTPAdapter)

// WithRateLimiter injects a rate limiter; every fetch goes through Wait()
// first.
func WithRateLimiter(r *RateLimiter) HTTPOption {
	return func(a *HTTPAdapter) {
		a.rateLimiter = r
	}
}

// WithFetchTimeout overrides the per-fetch timeout.
func WithFetchTimeout(d time.Duration) HTTPOption {
	return func(a *HTTPAdapter) {
		a.timeout = d
	}
}

// WithRestyClient overrides the underlying resty client. Used in tests to
// point the adapter at an httptest server.
func WithRestyClient(c *resty.Client) HTTPOption {
	return func(a *HTTPAdapter) {
		a.client = c
	}
}

// NewHTTPAdapter creates an adapter for one retailer. apiKey may be empty
// for endpoints that do not require one.
func NewHTTPAdapter(name, storeID, baseURL, apiKey string, opts ...HTTPOption) *HTTPAdapter {
	a := &HTTPAdapter{
		name:    name,
		storeID: storeID,
		timeout: defaultFetchTimeout,
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetHeader("X-Api-Key", apiKey)
	}
	a.client = client

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name implements Adapter.
func (a *HTTPAdapter) Name() string { return a.name }

// StoreID implements Adapter.
func (a *HTTPAdapter) StoreID() string { return a.storeID }

// FetchQuotes implements Adapter. Every failure, from rate limit
// exhaustion to an undecodable body, comes back wrapped in ErrUnavailable
// so the orchestrator can contain it per store.
func (a *HTTPAdapter) FetchQuotes(
	ctx context.Context,
	desc domain.ProductDescriptor,
	maxResults int,
) ([]domain.PriceQuote, error) {
	start := time.Now()
	defer func() {
		metrics.AdapterCallDuration.WithLabelValues(a.name).Observe(time.Since(start).Seconds())
	}()

	if a.rateLimiter != nil {
		if err := a.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.AdapterDailyLimitHits.Inc()
			}
			metrics.AdapterCallsTotal.WithLabelValues(a.name, "rate_limited").Inc()
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, a.name, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var result searchResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     buildQuery(desc),
			"limit": strconv.Itoa(maxResults),
		}).
		SetResult(&result).
		Get("/search")
	if err != nil {
		metrics.AdapterCallsTotal.WithLabelValues(a.name, "error").Inc()
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, a.name, err)
	}
	if resp.IsError() {
		metrics.AdapterCallsTotal.WithLabelValues(a.name, "error").Inc()
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnavailable, a.name, resp.StatusCode())
	}

	metrics.AdapterCallsTotal.WithLabelValues(a.name, "ok").Inc()

	quotes := toQuotes(a.storeID, desc.ProductID, result.Results, time.Now().UTC())
	if len(quotes) > maxResults {
		quotes = quotes[:maxResults]
	}
	return quotes, nil
}

// buildQuery assembles the retailer search string from the descriptor.
// Brand and model sharpen matching when the catalog has them.
func buildQuery(desc domain.ProductDescriptor) string {
	parts := make([]string, 0, 3)
	if desc.Brand != "" {
		parts = append(parts, desc.Brand)
	}
	if desc.Model != "" {
		parts = append(parts, desc.Model)
	}
	if len(parts) == 0 {
		parts = append(parts, desc.Name)
	}
	return strings.Join(parts, " ")
}
