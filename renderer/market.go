package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/marketdesk"
	md "github.com/nao1215/markdown"
)

// IndicesMarkdown renders world index quotes grouped by region.
func IndicesMarkdown(quotes []marketdesk.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("World Indices")
	bySymbol := marketdesk.QuoteMap(quotes)
	for _, region := range marketdesk.WorldRegions {
		var found []marketdesk.Quote
		for _, s := range region.Indices {
			if q, ok := bySymbol[s]; ok {
				found = append(found, q)
			}
		}
		if len(found) == 0 {
			continue
		}
		doc.H2(region.Name)
		doc.Table(quotesTable(found, marketdesk.IndexName))
	}
	return doc.String()
}

// MoversMarkdown renders the biggest gainers.
func MoversMarkdown(quotes []marketdesk.Quote) string {
	return QuotesMarkdown("Biggest Gainers", quotes, nil)
}

// ForexMarkdown renders the currency ETFs.
func ForexMarkdown(quotes []marketdesk.Quote) string {
	return QuotesMarkdown("Currencies", quotes, marketdesk.ForexName)
}

// TreasuryMarkdown renders the US treasury curve with its daily change.
func TreasuryMarkdown(curve marketdesk.TreasuryCurve) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("US Treasury Yields %s", curve.Current.Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Maturity", "Yield", "Change"},
		Rows:      [][]string{},
	}
	for _, m := range marketdesk.Maturities {
		y, ok := curve.Current.Yield(m.Label)
		if !ok {
			continue
		}
		bp := "-"
		if c, ok := curve.ChangeBP(m.Label); ok {
			bp = fmt.Sprintf("%+.0f bp", c)
		}
		table.Rows = append(table.Rows, []string{m.Name, marketdesk.Percent(y).String(), bp})
	}
	doc.Table(table)

	if spread, ok := curve.Spread10Y2Y(); ok {
		status := "normal"
		if spread < 0 {
			status = "inverted"
		}
		doc.PlainText(fmt.Sprintf("10Y-2Y spread: %s (%s)", md.Bold(fmt.Sprintf("%+.2f%%", spread)), status))
	}
	return doc.String()
}
