package fmp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/marketdesk"
)

// WorldIndices returns the quotes of marketdesk.WorldIndices.
func (c *Client) WorldIndices(ctx context.Context) ([]marketdesk.Quote, error) {
	return c.Quotes(ctx, marketdesk.WorldIndices())
}

// Forex returns the quotes of the currency ETFs.
func (c *Client) Forex(ctx context.Context) ([]marketdesk.Quote, error) {
	return c.Quotes(ctx, marketdesk.ForexETFs)
}

// Gainers returns the biggest gainers of the day as quotes without volume.
func (c *Client) Gainers(ctx context.Context, limit int) ([]marketdesk.Quote, error) {
	var movers []marketdesk.Mover
	if err := c.get(ctx, false, "/biggest-gainers", nil, &movers); err != nil {
		return nil, err
	}
	if limit > 0 && len(movers) > limit {
		movers = movers[:limit]
	}
	quotes := make([]marketdesk.Quote, 0, len(movers))
	for _, m := range movers {
		quotes = append(quotes, m.Quote())
	}
	return quotes, nil
}

// treasuryAliases lists the accepted keys of each maturity, in order of preference.
var treasuryAliases = map[string][]string{
	"1M":  {"month1", "oneMonth", "1M", "m1", "month_1", "1month"},
	"3M":  {"month3", "threeMonth", "3M", "m3", "month_3", "3month"},
	"6M":  {"month6", "sixMonth", "6M", "m6", "month_6", "6month"},
	"1Y":  {"year1", "oneYear", "1Y", "y1", "year_1", "1year"},
	"2Y":  {"year2", "twoYear", "2Y", "y2", "year_2", "2year"},
	"5Y":  {"year5", "fiveYear", "5Y", "y5", "year_5", "5year"},
	"10Y": {"year10", "tenYear", "10Y", "y10", "year_10", "10year"},
	"30Y": {"year30", "thirtyYear", "30Y", "y30", "year_30", "30year"},
}

// Treasury returns the latest treasury curve and the one of the day before.
func (c *Client) Treasury(ctx context.Context) (marketdesk.TreasuryCurve, error) {
	var rows []any
	if err := c.get(ctx, false, "/treasury-rates", nil, &rows); err != nil {
		return marketdesk.TreasuryCurve{}, err
	}
	var curve marketdesk.TreasuryCurve
	if len(rows) > 0 {
		curve.Current = parseTreasury(rows[0])
	}
	if len(rows) > 1 {
		prev := parseTreasury(rows[1])
		curve.Previous = &prev
	}
	return curve, nil
}

// parseTreasury resolves the maturity aliases of a row into fixed labels.
func parseTreasury(row any) marketdesk.TreasuryRates {
	rates := marketdesk.TreasuryRates{Yields: map[string]float64{}}
	if d, err := jsonpath.Get(`$.date`, row); err == nil {
		rates.Date = fmt.Sprint(d)
	}
	for _, m := range marketdesk.Maturities {
		for _, alias := range treasuryAliases[m.Label] {
			v, err := jsonpath.Get(fmt.Sprintf(`$[%q]`, alias), row)
			if err != nil {
				continue
			}
			if y, ok := toFloat(v); ok {
				rates.Yields[m.Label] = y
				break
			}
		}
	}
	return rates
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
