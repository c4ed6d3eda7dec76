package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/marketdesk"
	md "github.com/nao1215/markdown"
)

// WatchlistMarkdown renders the entries of a watchlist.
func WatchlistMarkdown(name string, entries []marketdesk.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Watchlist %s", name))
	if len(entries) == 0 {
		doc.PlainText("The watchlist is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Price", "1D", "1M", "YTD", "3Y", "P/E", "Market Cap"},
		Rows:   [][]string{},
	}
	for _, e := range entries {
		cur := e.Currency()
		row := []string{
			e.Symbol.String(),
			marketdesk.Truncate(e.Name, 24),
			money(e.Price, cur),
		}
		if e.HasChanges {
			row = append(row, percent(e.Change1D), percent(e.Change1M), percent(e.ChangeYTD), percent(e.Change3Y))
		} else {
			row = append(row, percent(e.ChangePercent), "-", "-", "-")
		}
		row = append(row, marketdesk.Ratio(e.PE), marketdesk.FormatMarketCap(e.MarketCap, cur))
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// WatchlistsMarkdown renders the watchlist names with their symbol count.
func WatchlistsMarkdown(w *marketdesk.Watchlist) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Watchlists")
	var items []string
	for _, name := range w.Names() {
		items = append(items, fmt.Sprintf("%s (%d symbols)", md.Bold(name), len(w.Symbols(name))))
	}
	doc.BulletList(items...)
	return doc.String()
}
