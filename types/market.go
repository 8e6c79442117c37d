package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a point-in-time demo price for one symbol.
type Quote struct {
	Symbol        string          `json:"symbol"`
	CompanyName   string          `json:"company_name"`
	Sector        string          `json:"sector"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	ChangeAmount  decimal.Decimal `json:"change_amount"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	Volume        int64           `json:"volume"`
	DayHigh       decimal.Decimal `json:"day_high"`
	DayLow        decimal.Decimal `json:"day_low"`
	LastUpdated   time.Time       `json:"last_updated"`
}

// Candle is one OHLC bar of generated price history.
type Candle struct {
	Symbol string          `json:"symbol"`
	Date   string          `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// MarketOverview aggregates the demo quote set.
type MarketOverview struct {
	Advancers     int             `json:"advancers"`
	Decliners     int             `json:"decliners"`
	Unchanged     int             `json:"unchanged"`
	AverageChange decimal.Decimal `json:"average_change_percent"`
	TotalVolume   int64           `json:"total_volume"`
	Timestamp     time.Time       `json:"timestamp"`
}
