package notify

import (
	"context"
	"log/slog"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded intents. It is
// used when no webhook backend is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards intents with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Dispatch logs and discards each intent, reporting it as delivered so
// alerts do not look stuck in local setups.
func (n *NoOpNotifier) Dispatch(_ context.Context, intents []domain.NotificationIntent) []DispatchResult {
	results := make([]DispatchResult, 0, len(intents))
	for i := range intents {
		n.log.Debug("notification discarded (no backend configured)",
			"alert_id", intents[i].AlertID,
			"product_id", intents[i].ProductID,
			"price", intents[i].TriggeringPrice.StringFixed(2),
		)
		results = append(results, DispatchResult{AlertID: intents[i].AlertID, Delivered: true})
	}
	return results
}
