package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/marketdesk"
	md "github.com/nao1215/markdown"
)

// quantity formats a share count without trailing zeros.
func quantity(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// HistoryMarkdown renders statistics and daily bars of a chronological price series.
func HistoryMarkdown(symbol marketdesk.Symbol, period string, prices []marketdesk.HistoricalPrice, cur marketdesk.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("History for %s (%s)", symbol, period))
	if len(prices) == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}

	stats := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Statistic", "Value"},
		Rows:      [][]string{},
	}
	if r, ok := marketdesk.Return(prices); ok {
		stats.Rows = append(stats.Rows, []string{"Return", percent(r)})
	}
	if low, high, ok := marketdesk.PriceRange(prices); ok {
		stats.Rows = append(stats.Rows, []string{"Range", money(low, cur) + " - " + money(high, cur)})
	}
	if v, ok := marketdesk.AverageVolume(prices); ok {
		stats.Rows = append(stats.Rows, []string{"Avg. Volume", marketdesk.FormatVolume(v)})
	}
	if v, ok := marketdesk.Volatility(prices); ok {
		stats.Rows = append(stats.Rows, []string{"Volatility (ann.)", marketdesk.Percent(v).String()})
	}
	doc.Table(stats)

	doc.H2("Daily Prices")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Open", "High", "Low", "Close", "Volume"},
		Rows:   [][]string{},
	}
	for _, p := range prices {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			money(p.Open, cur),
			money(p.High, cur),
			money(p.Low, cur),
			money(p.Close, cur),
			marketdesk.FormatVolume(p.Volume),
		})
	}
	doc.Table(table)
	return doc.String()
}
