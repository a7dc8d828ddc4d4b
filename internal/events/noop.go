package events

import (
	"context"
	"log/slog"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// NoOpPublisher implements Publisher by logging discarded events. Used
// when no broker is configured.
type NoOpPublisher struct {
	log *slog.Logger
}

// NewNoOpPublisher creates a publisher that discards events with a log
// message.
func NewNoOpPublisher(log *slog.Logger) *NoOpPublisher {
	return &NoOpPublisher{log: log}
}

// PublishChanges logs and discards the batch.
func (p *NoOpPublisher) PublishChanges(_ context.Context, events []domain.ChangeEvent) error {
	if len(events) > 0 {
		p.log.Debug("change events discarded (no broker configured)", "count", len(events))
	}
	return nil
}

// Close is a no-op.
func (*NoOpPublisher) Close() error { return nil }
