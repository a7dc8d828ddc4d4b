package engine

import (
	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// Match compares a product's refreshed quotes against its standing alerts
// and produces one notification intent per alert whose threshold the best
// current price meets. Pure function: deactivation of matched alerts is
// the caller's job (via compare-and-set, so concurrent refresh cycles fire
// each alert at most once).
//
// Rules:
//   - The triggering quote is the cheapest in quotes; ties go to the first
//     such store in input order.
//   - Inactive alerts and alerts with non-positive thresholds are skipped.
//   - With no quotes (every adapter failed this cycle) no intents are
//     produced and every alert stays active for the next cycle.
//   - An alert appearing twice in the input yields at most one intent.
func Match(productID string, quotes []domain.PriceQuote, alerts []domain.PriceAlert) []domain.NotificationIntent {
	best := domain.BestQuote(quotes)
	if best == nil {
		return nil
	}

	var intents []domain.NotificationIntent
	seen := make(map[string]struct{}, len(alerts))

	for i := range alerts {
		a := &alerts[i]
		if a.ProductID != productID || !a.IsActive || !a.Valid() {
			continue
		}
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}

		if best.Price.GreaterThan(a.TargetPrice) {
			continue
		}

		intents = append(intents, domain.NotificationIntent{
			AlertID:         a.ID,
			UserID:          a.UserID,
			ProductID:       productID,
			StoreID:         best.StoreID,
			TriggeringPrice: best.Price,
			TargetPrice:     a.TargetPrice,
			Savings:         a.TargetPrice.Sub(best.Price),
			SourceURL:       best.SourceURL,
		})
	}

	return intents
}
