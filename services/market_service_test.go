package services

import (
	"math/rand"
	"testing"

	apperrors "github.com/enecpp/financial-news-analyzer/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededMarketService() *MarketService {
	return NewMarketServiceWithSource(rand.New(rand.NewSource(7)))
}

func TestCurrentQuotes_AllSymbolsByDefault(t *testing.T) {
	svc := seededMarketService()

	quotes := svc.CurrentQuotes(nil)
	assert.Len(t, quotes, len(svc.Symbols()))
}

func TestCurrentQuotes_SkipsUnknownSymbols(t *testing.T) {
	svc := seededMarketService()

	quotes := svc.CurrentQuotes([]string{"AAPL", "BOGUS", "MSFT"})
	require.Len(t, quotes, 2)
	assert.Equal(t, "AAPL", quotes[0].Symbol)
	assert.Equal(t, "MSFT", quotes[1].Symbol)
}

func TestCurrentQuotes_BoundedDailyChange(t *testing.T) {
	svc := seededMarketService()

	for _, q := range svc.CurrentQuotes(nil) {
		assert.True(t, q.ChangePercent.GreaterThanOrEqual(decimal.NewFromInt(-5)),
			"%s change %s below -5%%", q.Symbol, q.ChangePercent)
		assert.True(t, q.ChangePercent.LessThanOrEqual(decimal.NewFromInt(5)),
			"%s change %s above 5%%", q.Symbol, q.ChangePercent)
		assert.True(t, q.CurrentPrice.IsPositive())
		assert.Positive(t, q.Volume)
	}
}

func TestHistory_PeriodLengths(t *testing.T) {
	svc := seededMarketService()

	tests := []struct {
		period string
		days   int
	}{
		{"1D", 1},
		{"5D", 5},
		{"1M", 30},
		{"1Y", 365},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			candles, err := svc.History("AAPL", tt.period)
			require.NoError(t, err)
			assert.Len(t, candles, tt.days)
		})
	}
}

func TestHistory_UnknownPeriodDefaultsToOneYear(t *testing.T) {
	svc := seededMarketService()

	candles, err := svc.History("MSFT", "bogus")
	require.NoError(t, err)
	assert.Len(t, candles, 365)
}

func TestHistory_UnknownSymbol(t *testing.T) {
	svc := seededMarketService()

	_, err := svc.History("BOGUS", "1M")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
}

func TestHistory_CandlesAreCoherent(t *testing.T) {
	svc := seededMarketService()

	candles, err := svc.History("NVDA", "1M")
	require.NoError(t, err)

	for _, c := range candles {
		assert.True(t, c.High.GreaterThanOrEqual(c.Low), "high below low on %s", c.Date)
		assert.True(t, c.Open.GreaterThanOrEqual(c.Low) && c.Open.LessThanOrEqual(c.High),
			"open outside range on %s", c.Date)
		assert.True(t, c.Close.IsPositive())
		assert.Positive(t, c.Volume)
	}
}

func TestOverview_CountsAddUp(t *testing.T) {
	svc := seededMarketService()

	overview := svc.Overview()
	total := overview.Advancers + overview.Decliners + overview.Unchanged
	assert.Equal(t, len(svc.Symbols()), total)
	assert.Positive(t, overview.TotalVolume)
}
