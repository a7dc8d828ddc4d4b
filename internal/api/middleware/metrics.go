// Package middleware provides Echo middleware for pricewatch.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pricewatch-io/pricewatch/internal/metrics"
)

// probeGauges maps probe paths to their 0/1 gauge. Probe and scrape traffic
// is kept out of the request histogram and counter.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// per method/path. /metrics, /healthz and /readyz bypass the histogram;
// the probe paths update their up gauges instead.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if gauge, ok := probeGauges[path]; ok {
				err := next(c)
				setProbeGauge(gauge, c.Response().Status)
				return err
			}
			if path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			observeRequest(c.Request().Method, path, c.Response().Status, time.Since(start))
			return err
		}
	}
}

func observeRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	metrics.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
	metrics.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
}

func setProbeGauge(gauge prometheus.Gauge, status int) {
	if status >= 200 && status < 300 {
		gauge.Set(1)
		return
	}
	gauge.Set(0)
}
