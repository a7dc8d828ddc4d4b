package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/pricewatch-io/pricewatch/pkg/types"
)

func quoteAt(price string, observed time.Time) domain.PriceQuote {
	return domain.PriceQuote{
		ProductID:  "prod-1",
		StoreID:    "store-1",
		Price:      decimal.RequireFromString(price),
		Currency:   "USD",
		ObservedAt: observed,
	}
}

func lastQuote(price string) *domain.PriceQuote {
	q := quoteAt(price, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	return &q
}

func TestDetect(t *testing.T) {
	t.Parallel()

	observed := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		newPrice        string
		last            *domain.PriceQuote
		wantClass       domain.Classification
		wantDelta       string
		wantDeltaPct    string
		wantOldPriceNil bool
	}{
		{
			name:            "no prior quote classifies as new",
			newPrice:        "49.99",
			last:            nil,
			wantClass:       domain.ChangeNew,
			wantDelta:       "0",
			wantDeltaPct:    "0",
			wantOldPriceNil: true,
		},
		{
			name:         "price drop classifies as decrease",
			newPrice:     "40.00",
			last:         lastQuote("50.00"),
			wantClass:    domain.ChangeDecrease,
			wantDelta:    "-10.00",
			wantDeltaPct: "-20",
		},
		{
			name:         "price rise classifies as increase",
			newPrice:     "55.00",
			last:         lastQuote("50.00"),
			wantClass:    domain.ChangeIncrease,
			wantDelta:    "5.00",
			wantDeltaPct: "10",
		},
		{
			name:         "identical price classifies as unchanged",
			newPrice:     "50.00",
			last:         lastQuote("50.00"),
			wantClass:    domain.ChangeUnchanged,
			wantDelta:    "0.00",
			wantDeltaPct: "0",
		},
		{
			name:         "trailing zeros still compare equal",
			newPrice:     "50",
			last:         lastQuote("50.00"),
			wantClass:    domain.ChangeUnchanged,
			wantDelta:    "0.00",
			wantDeltaPct: "0",
		},
		{
			name:         "cent level difference is not equality",
			newPrice:     "49.99",
			last:         lastQuote("50.00"),
			wantClass:    domain.ChangeDecrease,
			wantDelta:    "-0.01",
			wantDeltaPct: "-0.02",
		},
		{
			name:         "zero previous price skips percentage",
			newPrice:     "10.00",
			last:         lastQuote("0.00"),
			wantClass:    domain.ChangeIncrease,
			wantDelta:    "10.00",
			wantDeltaPct: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := quoteAt(tt.newPrice, observed)
			ev := Detect("prod-1", "store-1", q, tt.last)

			assert.Equal(t, "prod-1", ev.ProductID)
			assert.Equal(t, "store-1", ev.StoreID)
			assert.Equal(t, tt.wantClass, ev.Classification)
			assert.Equal(t, observed, ev.ObservedAt)
			assert.True(t, ev.NewPrice.Equal(q.Price))

			if tt.wantOldPriceNil {
				assert.Nil(t, ev.OldPrice)
			} else {
				require.NotNil(t, ev.OldPrice)
				assert.True(t, ev.OldPrice.Equal(tt.last.Price))
			}

			assert.True(t, ev.Delta.Equal(decimal.RequireFromString(tt.wantDelta)),
				"delta = %s, want %s", ev.Delta, tt.wantDelta)
			assert.True(t, ev.DeltaPercent.Equal(decimal.RequireFromString(tt.wantDeltaPct)),
				"delta percent = %s, want %s", ev.DeltaPercent, tt.wantDeltaPct)
		})
	}
}

func TestDetectDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	last := lastQuote("50.00")
	before := last.Price

	ev := Detect("prod-1", "store-1", quoteAt("40.00", time.Now()), last)

	require.NotNil(t, ev.OldPrice)
	assert.True(t, last.Price.Equal(before))

	// The event holds its own copy of the old price.
	*ev.OldPrice = decimal.NewFromInt(999)
	assert.True(t, last.Price.Equal(before))
}
