package engine

import (
	"github.com/shopspring/decimal"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

var hundred = decimal.NewFromInt(100)

// Detect classifies a new quote against the last persisted quote for the
// same (product, store) pair. Pure function: no I/O, deterministic given
// its inputs.
//
// With no prior quote the event is ChangeNew with a nil OldPrice. Equality
// is exact decimal equality; prices are discrete currency amounts, so no
// epsilon tolerance applies. A zero previous price cannot produce a
// percentage, so DeltaPercent stays zero and classification follows the
// sign of the delta.
func Detect(productID, storeID string, newQuote domain.PriceQuote, last *domain.PriceQuote) domain.ChangeEvent {
	ev := domain.ChangeEvent{
		ProductID:  productID,
		StoreID:    storeID,
		NewPrice:   newQuote.Price,
		ObservedAt: newQuote.ObservedAt,
	}

	if last == nil {
		ev.Classification = domain.ChangeNew
		return ev
	}

	old := last.Price
	ev.OldPrice = &old
	ev.Delta = newQuote.Price.Sub(old)

	if !old.IsZero() {
		ev.DeltaPercent = ev.Delta.Div(old).Mul(hundred)
	}

	switch {
	case ev.Delta.IsZero():
		ev.Classification = domain.ChangeUnchanged
	case ev.Delta.IsNegative():
		ev.Classification = domain.ChangeDecrease
	default:
		ev.Classification = domain.ChangeIncrease
	}

	return ev
}
