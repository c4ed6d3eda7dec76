package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/date"
	"github.com/etnz/marketdesk/eodhd"
	"github.com/etnz/marketdesk/fred"
	"github.com/etnz/marketdesk/kalshi"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestQuoteMarkdown(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	d := marketdesk.QuoteDetail{
		Quote: marketdesk.Quote{
			Symbol:        "SAP",
			Name:          "SAP SE",
			Price:         250.5,
			Change:        -2.25,
			ChangePercent: -0.89,
			MarketCap:     ptr(2.9e11),
			Exchange:      "XETRA",
		},
		Changes: &marketdesk.PriceChangeSet{YTD: ptr(12.5)},
		News:    []marketdesk.NewsArticle{{Title: "SAP beats", Site: "Reuters", PublishedDate: "2025-03-14 10:00:00"}},
	}

	out := QuoteMarkdown(d, now)
	assert.Contains(t, out, "SAP SE")
	assert.Contains(t, out, "€250.50")
	assert.Contains(t, out, "▼")
	assert.Contains(t, out, "-0.89%")
	assert.Contains(t, out, "€290.00B")
	assert.Contains(t, out, "+12.50%")
	assert.Contains(t, out, "SAP beats (Reuters, 2h ago)")
	assert.NotContains(t, out, "5D")
}

func TestPortfolioMarkdown(t *testing.T) {
	holdings := []marketdesk.Holding{
		{Symbol: "AAPL", Shares: 10, Price: 100, Value: 1000, TotalCost: 800, GainLoss: 200, GainLossPercent: 25},
		{Symbol: "MSFT", Shares: 5, Price: 400, Value: 2000, TotalCost: 2100, GainLoss: -100, GainLossPercent: -4.76},
	}

	out := PortfolioMarkdown(holdings)
	assert.Less(t, strings.Index(out, "MSFT"), strings.Index(out, "AAPL"))
	assert.Contains(t, out, "$3,000.00")
	assert.Contains(t, out, "+$100.00")
	assert.Contains(t, out, "-$100.00")
	assert.Equal(t, marketdesk.Symbol("AAPL"), holdings[0].Symbol, "input is not reordered")

	assert.Contains(t, PortfolioMarkdown(nil), "No holdings.")
	assert.NotContains(t, out, "several currencies")
}

func TestPortfolioMarkdown_MixedCurrencies(t *testing.T) {
	holdings := []marketdesk.Holding{
		{Symbol: "AAPL", Exchange: "NASDAQ", Shares: 10, Price: 100, Value: 1000, TotalCost: 800},
		{Symbol: "SAP", Exchange: "XETRA", Shares: 10, Price: 200, Value: 2000, TotalCost: 2000},
	}

	out := PortfolioMarkdown(holdings)
	assert.Contains(t, out, "€2,000.00", "rows keep their own currency")
	assert.Contains(t, out, "several currencies")
	assert.Contains(t, out, "**3,000.00**")
	assert.NotContains(t, out, "€3,000.00")
	assert.NotContains(t, out, "$3,000.00")
}

func TestWatchlistMarkdown(t *testing.T) {
	entries := []marketdesk.Entry{
		{Quote: marketdesk.Quote{Symbol: "AAPL", Name: "Apple", Price: 190, ChangePercent: 1}, HasChanges: true, Change1D: 1, ChangeYTD: -3.5, PE: ptr(29.1)},
		{Quote: marketdesk.Quote{Symbol: "NEW", Price: 10, ChangePercent: 2}},
	}

	out := WatchlistMarkdown("default", entries)
	assert.Contains(t, out, "-3.50%")
	assert.Contains(t, out, "29.10")
	assert.Contains(t, out, "+2.00%")
	assert.Contains(t, out, "N/A")

	assert.Contains(t, WatchlistMarkdown("tech", nil), "empty")
}

func TestHistoryMarkdown(t *testing.T) {
	prices := []marketdesk.HistoricalPrice{
		{Date: date.MustParse("2025-03-12"), Low: 9, High: 11, Close: 10, Volume: 1000},
		{Date: date.MustParse("2025-03-13"), Low: 10, High: 12, Close: 11, Volume: 3000},
		{Date: date.MustParse("2025-03-14"), Low: 10, High: 13, Close: 12, Volume: 2000},
	}

	out := HistoryMarkdown("AAPL", "1W", prices, marketdesk.USD)
	assert.Contains(t, out, "+20.00%")
	assert.Contains(t, out, "$9.00 - $13.00")
	assert.Contains(t, out, "2.00K")
	assert.Contains(t, out, "Volatility")
	assert.Contains(t, out, "2025-03-13")
}

func TestTreasuryMarkdown(t *testing.T) {
	curve := marketdesk.TreasuryCurve{
		Current:  marketdesk.TreasuryRates{Date: "2025-03-14", Yields: map[string]float64{"2Y": 4.5, "10Y": 4.25}},
		Previous: &marketdesk.TreasuryRates{Yields: map[string]float64{"10Y": 4.2}},
	}

	out := TreasuryMarkdown(curve)
	assert.Contains(t, out, "10 Year")
	assert.Contains(t, out, "+5 bp")
	assert.Contains(t, out, "inverted")
	assert.NotContains(t, out, "30 Year")
}

func TestIncomeMarkdown(t *testing.T) {
	var s marketdesk.IncomeStatement
	s.Period, s.FiscalYear, s.Revenue = "FY", ptr("2024"), ptr(391.5e9)

	out := IncomeMarkdown("AAPL", []marketdesk.IncomeStatement{s}, marketdesk.USD)
	assert.Contains(t, out, "FY 2024")
	assert.Contains(t, out, "$391.50B")

	assert.Contains(t, CashFlowMarkdown("AAPL", nil, marketdesk.USD), "No statements.")
}

func TestProvidersMarkdown(t *testing.T) {
	de, _ := eodhd.CountryOf("DE")
	out := BondsMarkdown(de, []eodhd.Bond{{Maturity: "10Y", Yield: 2.45, Change: ptr(0.03)}})
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "+0.030")

	out = EconomyMarkdown([]fred.Reading{
		{Indicator: fred.Indicators[1], Observation: &fred.Observation{Date: "2025-02-01", Value: "4.1"}},
		{Indicator: fred.Indicators[4], Observation: &fred.Observation{Date: "2025-03-14", Value: "."}},
	})
	assert.Contains(t, out, "4.10")
	assert.Contains(t, out, "N/A")

	out = PredictionsMarkdown([]kalshi.Category{{Name: "Fed Rates", Markets: []kalshi.Market{{Title: "Cut in March", YesBid: ptr(62), Volume24h: 1500}}}})
	assert.Contains(t, out, "Fed Rates")
	assert.Contains(t, out, "62c")
	assert.Contains(t, out, "1.5K")
}
