package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pricewatch-io/pricewatch/internal/adapter"
	"github.com/pricewatch-io/pricewatch/internal/config"
	"github.com/pricewatch-io/pricewatch/internal/engine"
	"github.com/pricewatch-io/pricewatch/internal/events"
	"github.com/pricewatch-io/pricewatch/internal/notify"
	"github.com/pricewatch-io/pricewatch/internal/store"
	"github.com/pricewatch-io/pricewatch/pkg/logger"
)

func refreshCommand() *cobra.Command {
	var productIDs []string

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Run a single refresh cycle in-process",
		Long: "Connects to the database, fetches quotes for the given products (or all " +
			"tracked products when --ids is omitted) and prints the refresh summary.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRefresh(cmd.Context(), productIDs)
		},
	}
	refreshCmd.Flags().StringSliceVar(&productIDs, "ids", nil, "product ids to refresh")

	return refreshCmd
}

func runRefresh(ctx context.Context, productIDs []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	registry := adapter.NewRegistry()
	for _, ac := range cfg.Adapters {
		limiter := adapter.NewRateLimiter(
			ac.RateLimit.PerSecond,
			ac.RateLimit.Burst,
			ac.RateLimit.DailyLimit,
		)
		registry.Register(adapter.NewHTTPAdapter(
			ac.Name, ac.StoreID, ac.BaseURL, ac.APIKey,
			adapter.WithRateLimiter(limiter),
			adapter.WithFetchTimeout(ac.FetchTimeout),
		))
	}

	var notifier notify.Notifier
	if cfg.Notifications.Webhook.Enabled {
		notifier = notify.NewWebhookNotifier(
			cfg.Notifications.Webhook.URL,
			notify.WithHeaders(cfg.Notifications.Webhook.Headers),
		)
	} else {
		notifier = notify.NewNoOpNotifier(log)
	}

	var publisher events.Publisher
	if cfg.Events.Enabled {
		kp := events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		defer func() {
			if err := kp.Close(); err != nil {
				log.Warn("closing event publisher", "error", err)
			}
		}()
		publisher = kp
	} else {
		publisher = events.NewNoOpPublisher(log)
	}

	eng := engine.NewEngine(st, registry, notifier, publisher,
		engine.WithLogger(log),
		engine.WithWorkers(cfg.Refresh.Workers),
		engine.WithMaxQuotesPerStore(cfg.Refresh.MaxQuotesPerStore),
		engine.WithRetryBackoff(cfg.Refresh.RetryBackoff),
	)

	runCtx, cancel := context.WithTimeout(ctx, cfg.Refresh.JobTimeout)
	defer cancel()

	if len(productIDs) == 0 {
		return eng.RunScheduledRefresh(runCtx)
	}

	summary, err := eng.RunRefresh(runCtx, productIDs)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
