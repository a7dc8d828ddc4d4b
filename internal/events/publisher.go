// Package events publishes price change events for downstream consumers
// (the UI's live price chart, analytics). Publishing is best-effort: a
// broker outage never affects persisted price data.
package events

import (
	"context"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// Publisher emits change events detected during a refresh cycle.
type Publisher interface {
	PublishChanges(ctx context.Context, events []domain.ChangeEvent) error
	Close() error
}
