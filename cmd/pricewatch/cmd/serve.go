package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/pricewatch-io/pricewatch/internal/adapter"
	"github.com/pricewatch-io/pricewatch/internal/api/handlers"
	"github.com/pricewatch-io/pricewatch/internal/api/middleware"
	"github.com/pricewatch-io/pricewatch/internal/config"
	"github.com/pricewatch-io/pricewatch/internal/engine"
	"github.com/pricewatch-io/pricewatch/internal/events"
	"github.com/pricewatch-io/pricewatch/internal/notify"
	"github.com/pricewatch-io/pricewatch/internal/search"
	"github.com/pricewatch-io/pricewatch/internal/store"
	"github.com/pricewatch-io/pricewatch/internal/telemetry"
	"github.com/pricewatch-io/pricewatch/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and refresh scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Endpoint:    cfg.Telemetry.Endpoint,
			ServiceName: cfg.Telemetry.ServiceName,
			SampleRatio: cfg.Telemetry.SampleRatio,
		})
		if err != nil {
			return fmt.Errorf("setting up telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
			defer c()
			if err := shutdown(shutdownCtx); err != nil {
				log.Warn("telemetry shutdown", "error", err)
			}
		}()
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

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
		log.Info("registered adapter", "name", ac.Name, "store_id", ac.StoreID)
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

	scheduler, err := engine.NewScheduler(eng, cfg.Refresh.Interval, cfg.Refresh.JobTimeout, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	scheduler.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("pricewatch API", Version))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(st))
	handlers.RegisterStoreRoutes(api, handlers.NewStoresHandler(st))
	handlers.RegisterQuoteRoutes(api, handlers.NewQuotesHandler(st))
	handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(st))
	handlers.RegisterFavoriteRoutes(api, handlers.NewFavoritesHandler(st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterRefreshRoutes(api, handlers.NewRefreshHandler(eng))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(search.NewKeywordAnalyzer(), st))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(cfg.Refresh.JobTimeout):
		log.Warn("scheduler jobs did not finish before shutdown deadline")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
