package eodhd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/marketdesk"
	"golang.org/x/sync/errgroup"
)

// Country lists the bond maturities EODHD quotes for a country.
type Country struct {
	Code       string
	Name       string
	Maturities []string
}

// Countries with government bonds, the US curve comes from the treasury rates instead.
var Countries = []Country{
	{"CA", "Canada", []string{"1M", "3M", "6M", "1Y", "2Y", "3Y", "5Y", "10Y", "20Y", "30Y"}},
	{"DE", "Germany", []string{"3M", "6M", "1Y", "2Y", "3Y", "5Y", "10Y", "30Y"}},
	{"UK", "United Kingdom", []string{"1M", "3M", "6M", "1Y", "2Y", "3Y", "5Y", "10Y", "30Y"}},
	{"JP", "Japan", []string{"3M", "2Y", "3Y", "5Y", "10Y", "30Y"}},
	{"FR", "France", []string{"1M", "3M", "6M", "1Y", "2Y", "3Y", "5Y", "10Y"}},
	{"AU", "Australia", []string{"1Y", "2Y", "5Y", "10Y", "30Y"}},
	{"IT", "Italy", []string{"1M", "3M", "6M", "1Y", "2Y", "3Y", "5Y", "10Y", "30Y"}},
	{"ES", "Spain", []string{"6M", "1Y", "3Y", "5Y", "10Y"}},
	{"CN", "China", []string{"1Y", "2Y", "3Y", "5Y", "7Y", "10Y"}},
}

// SnapshotMaturities are the maturities of the international overview.
var SnapshotMaturities = []string{"1M", "5Y", "10Y"}

// CountryOf returns the country for a code, case insensitive.
func CountryOf(code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	i := slices.IndexFunc(Countries, func(c Country) bool { return c.Code == code })
	if i < 0 {
		return Country{}, false
	}
	return Countries[i], true
}

// Ticker returns the EODHD ticker of a bond, like "DE10Y.GBOND".
func Ticker(country, maturity string) string {
	return fmt.Sprintf("%s%s.GBOND", country, maturity)
}

// Bond is the real-time yield of a government bond, in percent.
type Bond struct {
	Country       string
	Maturity      string
	Yield         float64
	Change        *float64
	PreviousClose *float64
}

// quantity is a number that EODHD reports as "NA" when missing.
type quantity struct{ v *float64 }

func (q *quantity) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`"NA"`)) {
		q.v = nil
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	q.v = &f
	return nil
}

type realTime struct {
	Code          string   `json:"code"`
	Close         quantity `json:"close"`
	Change        quantity `json:"change"`
	PreviousClose quantity `json:"previousClose"`
}

// Yield returns the yield of one bond. A bond without close nor previous close is a
// *marketdesk.SymbolNotFoundError.
func (c *Client) Yield(ctx context.Context, country, maturity string) (Bond, error) {
	country = strings.ToUpper(country)
	ticker := Ticker(country, maturity)
	var rt realTime
	if err := c.get(ctx, "/real-time/"+ticker, &rt); err != nil {
		return Bond{}, err
	}
	last := rt.Close.v
	if last == nil {
		last = rt.PreviousClose.v
	}
	if last == nil {
		return Bond{}, &marketdesk.SymbolNotFoundError{Symbol: marketdesk.Symbol(ticker)}
	}
	return Bond{
		Country:       country,
		Maturity:      maturity,
		Yield:         *last,
		Change:        rt.Change.v,
		PreviousClose: rt.PreviousClose.v,
	}, nil
}

// CountryYields returns the available yields of a country, shortest maturity first.
// An unknown country has no yields.
func (c *Client) CountryYields(ctx context.Context, code string) ([]Bond, error) {
	country, ok := CountryOf(code)
	if !ok {
		return []Bond{}, nil
	}
	return c.yields(ctx, country, country.Maturities)
}

func (c *Client) yields(ctx context.Context, country Country, maturities []string) ([]Bond, error) {
	// maturities are passed as symbols to reuse the best-effort batch.
	symbols := make([]marketdesk.Symbol, len(maturities))
	for i, m := range maturities {
		symbols[i] = marketdesk.Symbol(m)
	}
	bonds, err := marketdesk.FetchAll(ctx, symbols, func(ctx context.Context, m marketdesk.Symbol) (Bond, error) {
		return c.Yield(ctx, country.Code, string(m))
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(bonds, func(a, b Bond) int {
		return slices.Index(maturities, a.Maturity) - slices.Index(maturities, b.Maturity)
	})
	return bonds, nil
}

// CountrySnapshot holds the SnapshotMaturities yields of a country.
type CountrySnapshot struct {
	Country Country
	Yields  map[string]float64
}

// Snapshot returns the SnapshotMaturities yields of every country, in Countries order.
// Countries without any yield are omitted.
func (c *Client) Snapshot(ctx context.Context) ([]CountrySnapshot, error) {
	snapshots := make([]CountrySnapshot, len(Countries))
	g, ctx := errgroup.WithContext(ctx)
	for i, country := range Countries {
		g.Go(func() error {
			var maturities []string
			for _, m := range SnapshotMaturities {
				if slices.Contains(country.Maturities, m) {
					maturities = append(maturities, m)
				}
			}
			bonds, err := c.yields(ctx, country, maturities)
			if err != nil {
				c.log.Debug().Err(err).Str("country", country.Code).Msg("snapshot skipped")
				return nil
			}
			yields := make(map[string]float64, len(bonds))
			for _, b := range bonds {
				yields[b.Maturity] = b.Yield
			}
			snapshots[i] = CountrySnapshot{Country: country, Yields: yields}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.DeleteFunc(snapshots, func(s CountrySnapshot) bool { return len(s.Yields) == 0 }), nil
}
