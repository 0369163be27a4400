package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a point-in-time price/volume snapshot for one symbol, as
// returned by a market data provider.
type Quote struct {
	Symbol        string
	CompanyName   string
	Price         decimal.Decimal
	Change        decimal.Decimal // absolute change vs previous close
	ChangePercent float64
	Volume        int64
	DayLow        decimal.Decimal
	DayHigh       decimal.Decimal
	Week52Low     decimal.Decimal
	Week52High    decimal.Decimal
	MarketCap     string
	PERatio       float64
	Source        string
	AsOf          time.Time
}

// IndexQuote is one major market index in a market summary.
type IndexQuote struct {
	Name          string
	Value         float64
	ChangePercent float64
}

// MarketSummary is a broad-market overview: major indices plus an
// overall sentiment label.
type MarketSummary struct {
	Indices   []IndexQuote
	Sentiment string
	Source    string
	AsOf      time.Time
}

// TrendingStock is one entry in a trending-stocks list.
type TrendingStock struct {
	Symbol        string
	CompanyName   string
	Price         decimal.Decimal
	ChangePercent float64
}
