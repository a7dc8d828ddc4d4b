package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

// WebhookNotifier implements Notifier by posting one JSON payload per
// intent to a configured webhook (the user-facing side turns these into
// email or in-app messages).
type WebhookNotifier struct {
	url     string
	headers map[string]string
	client  *http.Client
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(n *WebhookNotifier) {
		n.client = c
	}
}

// WithHeaders sets extra request headers (auth tokens and the like).
func WithHeaders(h map[string]string) WebhookOption {
	return func(n *WebhookNotifier) {
		n.headers = h
	}
}

// NewWebhookNotifier creates a notifier targeting the given webhook URL.
func NewWebhookNotifier(url string, opts ...WebhookOption) *WebhookNotifier {
	n := &WebhookNotifier{
		url:    url,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// webhookPayload is the JSON body posted per fired alert.
type webhookPayload struct {
	Type            string `json:"type"`
	AlertID         string `json:"alert_id"`
	UserID          string `json:"user_id"`
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name,omitempty"`
	StoreID         string `json:"store_id"`
	TriggeringPrice string `json:"triggering_price"`
	TargetPrice     string `json:"target_price"`
	Savings         string `json:"savings"`
	SourceURL       string `json:"source_url,omitempty"`
}

// Dispatch posts each intent and returns a per-intent result. A failure
// on one intent does not stop the rest.
func (n *WebhookNotifier) Dispatch(ctx context.Context, intents []domain.NotificationIntent) []DispatchResult {
	results := make([]DispatchResult, 0, len(intents))
	for i := range intents {
		err := n.post(ctx, &intents[i])
		results = append(results, DispatchResult{
			AlertID:   intents[i].AlertID,
			Delivered: err == nil,
			Err:       err,
		})
	}
	return results
}

func (n *WebhookNotifier) post(ctx context.Context, intent *domain.NotificationIntent) error {
	payload := webhookPayload{
		Type:            "price_alert",
		AlertID:         intent.AlertID,
		UserID:          intent.UserID,
		ProductID:       intent.ProductID,
		ProductName:     intent.ProductName,
		StoreID:         intent.StoreID,
		TriggeringPrice: intent.TriggeringPrice.StringFixed(2),
		TargetPrice:     intent.TargetPrice.StringFixed(2),
		Savings:         intent.Savings.StringFixed(2),
		SourceURL:       intent.SourceURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range n.headers {
		req.Header.Set(k, v)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("webhook rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("webhook returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
