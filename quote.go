package marketdesk

import "github.com/etnz/marketdesk/date"

// Quote is a snapshot of a tradable instrument.
type Quote struct {
	Symbol        Symbol   `json:"symbol"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Change        float64  `json:"change"`
	ChangePercent float64  `json:"changePercentage"`
	DayLow        float64  `json:"dayLow"`
	DayHigh       float64  `json:"dayHigh"`
	YearLow       float64  `json:"yearLow"`
	YearHigh      float64  `json:"yearHigh"`
	MarketCap     *float64 `json:"marketCap"`
	Volume        float64  `json:"volume"`
	AvgVolume     float64  `json:"avgVolume"`
	Open          float64  `json:"open"`
	PreviousClose float64  `json:"previousClose"`
	EPS           *float64 `json:"eps"`
	PE            *float64 `json:"pe"`
	Exchange      string   `json:"exchange"`
	Timestamp     int64    `json:"timestamp"`
}

// Currency returns the display currency derived from the quote's exchange.
func (q Quote) Currency() Currency { return CurrencyOf(q.Exchange) }

// Direction returns "up", "down" or "neutral" according to the daily change.
func (q Quote) Direction() string {
	switch {
	case q.Change > 0:
		return "up"
	case q.Change < 0:
		return "down"
	default:
		return "neutral"
	}
}

// QuoteMap indexes quotes by symbol.
func QuoteMap(quotes []Quote) map[Symbol]Quote {
	m := make(map[Symbol]Quote, len(quotes))
	for _, q := range quotes {
		m[q.Symbol] = q
	}
	return m
}

// PriceChangeSet holds percent returns over fixed horizons. Any horizon can be missing.
type PriceChangeSet struct {
	Symbol     Symbol   `json:"symbol"`
	OneDay     *float64 `json:"1D"`
	FiveDay    *float64 `json:"5D"`
	OneMonth   *float64 `json:"1M"`
	ThreeMonth *float64 `json:"3M"`
	SixMonth   *float64 `json:"6M"`
	YTD        *float64 `json:"ytd"`
	OneYear    *float64 `json:"1Y"`
	ThreeYear  *float64 `json:"3Y"`
	FiveYear   *float64 `json:"5Y"`
	TenYear    *float64 `json:"10Y"`
	Max        *float64 `json:"max"`
}

// Horizons lists the horizon labels in display order.
var Horizons = []string{"1D", "5D", "1M", "3M", "6M", "YTD", "1Y", "3Y", "5Y", "10Y", "MAX"}

// Get returns the percent change for a horizon label of Horizons.
func (p PriceChangeSet) Get(horizon string) (float64, bool) {
	var v *float64
	switch horizon {
	case "1D":
		v = p.OneDay
	case "5D":
		v = p.FiveDay
	case "1M":
		v = p.OneMonth
	case "3M":
		v = p.ThreeMonth
	case "6M":
		v = p.SixMonth
	case "YTD":
		v = p.YTD
	case "1Y":
		v = p.OneYear
	case "3Y":
		v = p.ThreeYear
	case "5Y":
		v = p.FiveYear
	case "10Y":
		v = p.TenYear
	case "MAX":
		v = p.Max
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// HistoricalPrice is one daily bar.
type HistoricalPrice struct {
	Date     date.Date `json:"date"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	Volume   float64   `json:"volume"`
	AdjClose *float64  `json:"adjClose"`
}

// Closes returns the closing prices as a chronological history.
func Closes(prices []HistoricalPrice) *date.History[float64] {
	h := new(date.History[float64])
	for _, p := range prices {
		h.Append(p.Date, p.Close)
	}
	return h
}

// Mover is a market mover as reported by the biggest gainers endpoint.
type Mover struct {
	Symbol        Symbol  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changesPercentage"`
	Exchange      string  `json:"exchange"`
}

// Quote converts the mover into a Quote without volume.
func (m Mover) Quote() Quote {
	return Quote{
		Symbol:        m.Symbol,
		Name:          m.Name,
		Price:         m.Price,
		Change:        m.Change,
		ChangePercent: m.ChangePercent,
		Exchange:      m.Exchange,
	}
}
