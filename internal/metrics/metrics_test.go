package metrics

import (
	"testing"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, RefreshDuration)
	assert.NotNil(t, RefreshProductsTotal)
	assert.NotNil(t, QuotesWrittenTotal)
	assert.NotNil(t, QuotesDroppedTotal)
	assert.NotNil(t, ChangeEventsTotal)
	assert.NotNil(t, AdapterCallsTotal)
	assert.NotNil(t, AdapterCallDuration)
	assert.NotNil(t, AdapterDailyLimitHits)
	assert.NotNil(t, AlertsFiredTotal)
	assert.NotNil(t, NotificationFailuresTotal)
	assert.NotNil(t, EventPublishFailuresTotal)
}

func TestCountersIncrement(t *testing.T) {
	before := ptestutil.ToFloat64(QuotesWrittenTotal)
	QuotesWrittenTotal.Inc()
	assert.Equal(t, before+1, ptestutil.ToFloat64(QuotesWrittenTotal))
}
