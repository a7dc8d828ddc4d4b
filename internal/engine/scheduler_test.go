package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch-io/pricewatch/internal/adapter"
	eventMocks "github.com/pricewatch-io/pricewatch/internal/events/mocks"
	"github.com/pricewatch-io/pricewatch/internal/notify"
	storeMocks "github.com/pricewatch-io/pricewatch/internal/store/mocks"
	"github.com/pricewatch-io/pricewatch/pkg/logger"
)

func TestNewScheduler(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), adapter.NewRegistry(),
		notify.NewNoOpNotifier(logger.NewNop()), eventMocks.NewMockPublisher(t))

	s, err := NewScheduler(eng, 15*time.Minute, 5*time.Minute, logger.NewNop())
	require.NoError(t, err)

	assert.Len(t, s.Entries(), 1)
}

func TestSchedulerStartStop(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), adapter.NewRegistry(),
		notify.NewNoOpNotifier(logger.NewNop()), eventMocks.NewMockPublisher(t))

	s, err := NewScheduler(eng, time.Hour, time.Minute, logger.NewNop())
	require.NoError(t, err)

	s.Start()
	ctx := s.Stop()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}
