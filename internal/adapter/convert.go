package adapter

import (
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// toQuotes converts retailer search results into domain quotes. Rows with
// unparseable prices are skipped; the remaining rows keep API order.
func toQuotes(storeID, productID string, results []searchResult, observedAt time.Time) []domain.PriceQuote {
	quotes := make([]domain.PriceQuote, 0, len(results))
	for i := range results {
		q, ok := toQuote(storeID, productID, &results[i], observedAt)
		if !ok {
			continue
		}
		quotes = append(quotes, q)
	}
	return quotes
}

func toQuote(storeID, productID string, r *searchResult, observedAt time.Time) (domain.PriceQuote, bool) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return domain.PriceQuote{}, false
	}

	q := domain.PriceQuote{
		ProductID:    productID,
		StoreID:      storeID,
		Price:        price,
		Currency:     r.Currency,
		Availability: parseAvailability(r.InStock),
		Title:        r.Title,
		SourceURL:    r.ProductURL,
		ObservedAt:   observedAt,
	}

	if r.ShippingCost != nil {
		if cost, err := decimal.NewFromString(*r.ShippingCost); err == nil {
			q.ShippingCost = &cost
		}
	}

	return q, true
}

func parseAvailability(inStock *bool) domain.Availability {
	switch {
	case inStock == nil:
		return domain.AvailabilityUnknown
	case *inStock:
		return domain.AvailabilityInStock
	default:
		return domain.AvailabilityOutOfStock
	}
}
