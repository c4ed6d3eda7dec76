package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/marketdesk"
	md "github.com/nao1215/markdown"
)

// QuoteMarkdown renders a quote with its price changes and news.
func QuoteMarkdown(d marketdesk.QuoteDetail, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := d.Currency()

	doc.H1(fmt.Sprintf("%s %s", d.Symbol, d.Name))
	doc.PlainText(fmt.Sprintf("%s %s %s (%s)",
		md.Bold(money(d.Price, cur)),
		arrow(d.Direction()),
		signed(d.Change, cur),
		percent(d.ChangePercent),
	))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value", "Metric", "Value"},
		Rows: [][]string{
			{"Open", money(d.Open, cur), "Prev. Close", money(d.PreviousClose, cur)},
			{"Day Low", money(d.DayLow, cur), "Day High", money(d.DayHigh, cur)},
			{"52W Low", money(d.YearLow, cur), "52W High", money(d.YearHigh, cur)},
			{"Volume", marketdesk.FormatVolume(d.Volume), "Avg. Volume", marketdesk.FormatVolume(d.AvgVolume)},
			{"Market Cap", marketdesk.FormatMarketCap(d.MarketCap, cur), "P/E", marketdesk.Ratio(d.PE)},
			{"EPS", compact(d.EPS, cur), "Exchange", orDash(d.Exchange)},
		},
	})

	if d.Changes != nil {
		doc.H2("Performance")
		table := md.TableSet{Header: []string{}, Rows: [][]string{{}}}
		for _, h := range marketdesk.Horizons {
			v, ok := d.Changes.Get(h)
			if !ok {
				continue
			}
			table.Header = append(table.Header, h)
			table.Alignment = append(table.Alignment, md.AlignRight)
			table.Rows[0] = append(table.Rows[0], percent(v))
		}
		if len(table.Header) > 0 {
			doc.Table(table)
		}
	}

	if len(d.News) > 0 {
		doc.H2("News")
		doc.BulletList(newsItems(d.News, now)...)
	}
	return doc.String()
}

// QuotesMarkdown renders a compact table of quotes under a title.
func QuotesMarkdown(title string, quotes []marketdesk.Quote, name func(marketdesk.Symbol) string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	doc.Table(quotesTable(quotes, name))
	return doc.String()
}

func quotesTable(quotes []marketdesk.Quote, name func(marketdesk.Symbol) string) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Symbol", "Name", "Price", "Change", "Change %"},
		Rows:      [][]string{},
	}
	for _, q := range quotes {
		n := q.Name
		if name != nil {
			n = name(q.Symbol)
		}
		cur := q.Currency()
		table.Rows = append(table.Rows, []string{
			q.Symbol.String(),
			marketdesk.Truncate(n, 30),
			money(q.Price, cur),
			signed(q.Change, cur),
			percent(q.ChangePercent),
		})
	}
	return table
}
