package kalshi

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Series is a curated economic series and its display category.
type Series struct {
	Ticker   string
	Category string
}

// EconomicSeries are the series of the featured markets.
var EconomicSeries = []Series{
	{"KXFED", "Fed Rates"},
	{"KXFEDDECISION", "Fed Rates"},
	{"KXRATECUT", "Fed Rates"},
	{"KXRATECUTCOUNT", "Fed Rates"},
	{"KXCPI", "Inflation (CPI)"},
	{"KXCPICORE", "Inflation (CPI)"},
	{"KXCPIYOY", "Inflation (CPI)"},
	{"KXU3", "Employment"},
	{"KXPAYROLLS", "Employment"},
	{"KXGDP", "GDP"},
	{"KXRECSSNBER", "Recession"},
	{"KXTNOTE", "Treasuries"},
	{"KX10Y2Y", "Treasuries"},
}

// Categories in display order.
var Categories = []string{"Fed Rates", "Inflation (CPI)", "Employment", "GDP", "Recession", "Treasuries"}

// CategoryOf returns the category of a series ticker, "" if not curated.
func CategoryOf(seriesTicker string) string {
	i := slices.IndexFunc(EconomicSeries, func(s Series) bool { return s.Ticker == seriesTicker })
	if i < 0 {
		return ""
	}
	return EconomicSeries[i].Category
}

// Featured returns the markets of EconomicSeries, deduplicated by ticker and sorted
// by 24h volume, highest first. Series that cannot be read are skipped.
func (c *Client) Featured(ctx context.Context, limit int) ([]Market, error) {
	perSeries := make([][]Market, len(EconomicSeries))
	var g errgroup.Group
	for i, s := range EconomicSeries {
		g.Go(func() error {
			markets, err := c.SeriesMarkets(ctx, s.Ticker)
			if err != nil {
				c.log.Debug().Err(err).Str("series", s.Ticker).Msg("series skipped")
				return nil
			}
			for j := range markets {
				markets[j].SeriesTicker = s.Ticker
			}
			perSeries[i] = markets
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	markets := dedupe(perSeries)
	slices.SortStableFunc(markets, byVolume)
	return limited(markets, limit), nil
}

func byVolume(a, b Market) int { return b.Volume24h - a.Volume24h }

// Category is a group of featured markets.
type Category struct {
	Name    string
	Markets []Market
}

// Grouped returns up to 50 featured markets grouped by category, in Categories order.
// Empty categories are omitted.
func (c *Client) Grouped(ctx context.Context) ([]Category, error) {
	markets, err := c.Featured(ctx, 50)
	if err != nil {
		return nil, err
	}
	return group(markets), nil
}

func group(markets []Market) []Category {
	byName := make(map[string][]Market)
	for _, m := range markets {
		if name := CategoryOf(m.SeriesTicker); name != "" {
			byName[name] = append(byName[name], m)
		}
	}
	var groups []Category
	for _, name := range Categories {
		if l := byName[name]; len(l) > 0 {
			slices.SortStableFunc(l, byVolume)
			groups = append(groups, Category{Name: name, Markets: l})
		}
	}
	return groups
}
