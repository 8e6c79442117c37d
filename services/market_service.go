package services

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/enecpp/financial-news-analyzer/errors"
	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/shopspring/decimal"
)

type symbolInfo struct {
	name      string
	sector    string
	basePrice float64
}

var marketSymbols = map[string]symbolInfo{
	"AAPL":  {"Apple Inc.", "Technology", 180},
	"MSFT":  {"Microsoft Corp.", "Technology", 350},
	"GOOGL": {"Alphabet Inc.", "Technology", 140},
	"AMZN":  {"Amazon.com Inc.", "Consumer Discretionary", 130},
	"TSLA":  {"Tesla Inc.", "Automotive", 220},
	"META":  {"Meta Platforms Inc.", "Technology", 320},
	"NFLX":  {"Netflix Inc.", "Entertainment", 450},
	"NVDA":  {"NVIDIA Corp.", "Technology", 900},
	"AMD":   {"Advanced Micro Devices Inc.", "Technology", 140},
	"ORCL":  {"Oracle Corp.", "Technology", 110},
}

var historyPeriods = map[string]int{
	"1D": 1, "5D": 5, "1M": 30, "3M": 90,
	"6M": 180, "1Y": 365, "2Y": 730, "5Y": 1825,
}

// MarketService generates demo quotes and price history around fixed base
// prices. All prices are procedurally randomized, never real market data.
type MarketService struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewMarketService() *MarketService {
	return NewMarketServiceWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewMarketServiceWithSource accepts a seeded source so tests get
// deterministic output.
func NewMarketServiceWithSource(rng *rand.Rand) *MarketService {
	return &MarketService{
		rng: rng,
		now: time.Now,
	}
}

// Symbols lists the known demo symbols in stable order.
func (s *MarketService) Symbols() []string {
	symbols := make([]string, 0, len(marketSymbols))
	for sym := range marketSymbols {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

// CurrentQuotes returns demo quotes for the requested symbols, or for every
// known symbol when none are given. Unknown symbols are skipped.
func (s *MarketService) CurrentQuotes(symbols []string) []types.Quote {
	if len(symbols) == 0 {
		symbols = s.Symbols()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	quotes := make([]types.Quote, 0, len(symbols))
	for _, symbol := range symbols {
		info, ok := marketSymbols[symbol]
		if !ok {
			continue
		}

		changePct := s.rng.Float64()*10 - 5
		currentPrice := info.basePrice * (1 + changePct/100)

		quotes = append(quotes, types.Quote{
			Symbol:        symbol,
			CompanyName:   info.name,
			Sector:        info.sector,
			CurrentPrice:  decimal.NewFromFloat(currentPrice).Round(2),
			ChangeAmount:  decimal.NewFromFloat(currentPrice - info.basePrice).Round(2),
			ChangePercent: decimal.NewFromFloat(changePct).Round(2),
			Volume:        int64(10_000_000 + s.rng.Intn(90_000_000)),
			DayHigh:       decimal.NewFromFloat(currentPrice * (1.01 + s.rng.Float64()*0.04)).Round(2),
			DayLow:        decimal.NewFromFloat(currentPrice * (0.95 + s.rng.Float64()*0.04)).Round(2),
			LastUpdated:   s.now().UTC(),
		})
	}

	return quotes
}

// History generates a random-walk OHLC series for one symbol over a named
// period (1D, 5D, 1M, 3M, 6M, 1Y, 2Y, 5Y).
func (s *MarketService) History(symbol, period string) ([]types.Candle, error) {
	info, ok := marketSymbols[symbol]
	if !ok {
		return nil, errors.NotFound("symbol", symbol)
	}

	days, ok := historyPeriods[period]
	if !ok {
		days = 365
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candles := make([]types.Candle, 0, days)
	price := info.basePrice
	date := s.now().UTC().AddDate(0, 0, -days)

	for i := 0; i < days; i++ {
		date = date.AddDate(0, 0, 1)

		// Random walk with a slight upward bias, floored at $10.
		dailyReturn := s.rng.NormFloat64()*0.02 + 0.0005
		price = price * (1 + dailyReturn)
		if price < 10 {
			price = 10
		}

		volatility := 0.005 + s.rng.Float64()*0.025
		high := price * (1 + volatility)
		low := price * (1 - volatility)
		open := low + s.rng.Float64()*(high-low)

		candles = append(candles, types.Candle{
			Symbol: symbol,
			Date:   date.Format("2006-01-02"),
			Open:   decimal.NewFromFloat(open).Round(2),
			High:   decimal.NewFromFloat(high).Round(2),
			Low:    decimal.NewFromFloat(low).Round(2),
			Close:  decimal.NewFromFloat(price).Round(2),
			Volume: int64(5_000_000 + s.rng.Intn(75_000_000)),
		})
	}

	return candles, nil
}

// Overview aggregates a fresh quote set into market-wide demo metrics.
func (s *MarketService) Overview() types.MarketOverview {
	quotes := s.CurrentQuotes(nil)

	var advancers, decliners, unchanged int
	var totalVolume int64
	changeSum := decimal.Zero

	for _, q := range quotes {
		switch q.ChangePercent.Sign() {
		case 1:
			advancers++
		case -1:
			decliners++
		default:
			unchanged++
		}
		totalVolume += q.Volume
		changeSum = changeSum.Add(q.ChangePercent)
	}

	avg := decimal.Zero
	if len(quotes) > 0 {
		avg = changeSum.Div(decimal.NewFromInt(int64(len(quotes)))).Round(2)
	}

	return types.MarketOverview{
		Advancers:     advancers,
		Decliners:     decliners,
		Unchanged:     unchanged,
		AverageChange: avg,
		TotalVolume:   totalVolume,
		Timestamp:     s.now().UTC(),
	}
}
