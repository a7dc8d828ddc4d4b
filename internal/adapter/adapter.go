// Package adapter defines the store adapter contract: given a product
// descriptor, a retailer adapter returns zero or more current price quotes.
// Adapters are black boxes to the refresh pipeline; any internal failure
// surfaces as ErrUnavailable and never aborts a batch.
package adapter

import (
	"context"
	"errors"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// ErrUnavailable marks a single store fetch that failed or timed out.
// The orchestrator skips that store for that product this cycle.
var ErrUnavailable = errors.New("store adapter unavailable")

// Adapter fetches current price quotes for one retailer.
//
// FetchQuotes must complete or fail within the caller's context deadline.
// On any internal error it returns an ErrUnavailable-wrapped error and no
// quotes. New retailers are added by implementing this interface, not by
// touching the orchestrator.
type Adapter interface {
	// Name identifies the adapter in logs and metrics.
	Name() string

	// StoreID returns the retailer this adapter quotes for.
	StoreID() string

	// FetchQuotes returns up to maxResults quotes for the product.
	FetchQuotes(ctx context.Context, desc domain.ProductDescriptor, maxResults int) ([]domain.PriceQuote, error)
}

// Registry holds the configured adapters the orchestrator fans out to.
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates a registry from the given adapters.
func NewRegistry(adapters ...Adapter) *Registry {
	return &Registry{adapters: adapters}
}

// Register adds an adapter.
func (r *Registry) Register(a Adapter) {
	r.adapters = append(r.adapters, a)
}

// All returns the registered adapters in registration order.
func (r *Registry) All() []Adapter {
	return r.adapters
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	return len(r.adapters)
}
