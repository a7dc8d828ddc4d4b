// Package notify defines the notification dispatcher interface and
// implementations for alert delivery.
package notify

import (
	"context"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// DispatchResult reports the delivery outcome for one intent.
type DispatchResult struct {
	AlertID   string
	Delivered bool
	Err       error
}

// Notifier delivers notification intents. Dispatch is best-effort: a
// failed delivery never rolls back price or alert state, and the caller
// invokes it at most once per alert firing (the alert is deactivated
// before dispatch, not after).
type Notifier interface {
	Dispatch(ctx context.Context, intents []domain.NotificationIntent) []DispatchResult
}
