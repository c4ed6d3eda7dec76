package marketdesk

import (
	"context"
	"math"
	"slices"
	"strings"

	"github.com/etnz/marketdesk/date"
	"gonum.org/v1/gonum/stat"
)

// HistoryPeriods are the accepted history period tokens.
var HistoryPeriods = []string{"1D", "1W", "1M", "3M", "6M", "1Y", "5Y"}

var periodDays = map[string]int{
	"1D": 1,
	"1W": 7,
	"1M": 30,
	"3M": 90,
	"6M": 180,
	"1Y": 365,
	"5Y": 1825,
}

// PeriodRange returns the date range covered by a period token ending today.
func PeriodRange(period string, today date.Date) (date.Range, error) {
	days, ok := periodDays[strings.ToUpper(period)]
	if !ok {
		return date.Range{}, &InvalidPeriodError{Period: period, Valid: HistoryPeriods}
	}
	return date.LastDays(today, days), nil
}

// HistoryFor fetches the daily bars of a period token, oldest first.
func HistoryFor(ctx context.Context, g Gateway, symbol Symbol, period string, today date.Date) ([]HistoricalPrice, error) {
	r, err := PeriodRange(period, today)
	if err != nil {
		return nil, err
	}
	prices, err := g.History(ctx, symbol, r.From, r.To)
	if err != nil {
		return nil, err
	}
	SortChronologically(prices)
	return prices, nil
}

// SortChronologically sorts bars oldest first.
func SortChronologically(prices []HistoricalPrice) {
	slices.SortFunc(prices, func(a, b HistoricalPrice) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
}

// Return is the percent change between the oldest and the newest close.
func Return(prices []HistoricalPrice) (float64, bool) {
	if len(prices) < 2 {
		return 0, false
	}
	closes := Closes(prices)
	_, oldest, _ := closes.Earliest()
	_, newest, _ := closes.Latest()
	if oldest == 0 {
		return 0, false
	}
	return (newest - oldest) / oldest * 100, true
}

// PriceRange returns the lowest low and highest high.
func PriceRange(prices []HistoricalPrice) (low, high float64, ok bool) {
	if len(prices) == 0 {
		return 0, 0, false
	}
	low, high = prices[0].Low, prices[0].High
	for _, p := range prices[1:] {
		low = math.Min(low, p.Low)
		high = math.Max(high, p.High)
	}
	return low, high, true
}

// AverageVolume is the mean daily volume.
func AverageVolume(prices []HistoricalPrice) (float64, bool) {
	if len(prices) == 0 {
		return 0, false
	}
	volumes := make([]float64, len(prices))
	for i, p := range prices {
		volumes[i] = p.Volume
	}
	return stat.Mean(volumes, nil), true
}

// tradingDays is used to annualize daily volatility.
const tradingDays = 252

// Volatility is the annualized standard deviation of daily close returns, in percent.
func Volatility(prices []HistoricalPrice) (float64, bool) {
	var closes []float64
	for _, c := range Closes(prices).Values() {
		closes = append(closes, c)
	}
	if len(closes) < 3 {
		return 0, false
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	if len(returns) < 2 {
		return 0, false
	}
	return stat.StdDev(returns, nil) * math.Sqrt(tradingDays) * 100, true
}
