package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/marketdesk"
	md "github.com/nao1215/markdown"
)

func newsItems(articles []marketdesk.NewsArticle, now time.Time) []string {
	items := make([]string, 0, len(articles))
	for _, a := range articles {
		title := marketdesk.Truncate(a.Title, 80)
		if a.URL != "" {
			title = md.Link(title, a.URL)
		}
		items = append(items, fmt.Sprintf("%s (%s, %s)", title, orDash(a.Site), a.Age(now)))
	}
	return items
}

// NewsMarkdown renders news articles about symbol, or market news when symbol is empty.
func NewsMarkdown(symbol marketdesk.Symbol, articles []marketdesk.NewsArticle, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	if symbol != "" {
		doc.H1(fmt.Sprintf("News for %s", symbol))
	} else {
		doc.H1("Market News")
	}
	if len(articles) == 0 {
		doc.PlainText("No news.")
		return doc.String()
	}
	for _, a := range articles {
		doc.H3(marketdesk.Truncate(a.Title, 100))
		doc.PlainText(fmt.Sprintf("%s, %s", orDash(a.Site), a.Age(now)))
		if a.Text != "" {
			doc.PlainText(marketdesk.Truncate(a.Text, 280))
		}
		if a.URL != "" {
			doc.PlainText(md.Link("Read more", a.URL))
		}
	}
	return doc.String()
}

// SearchMarkdown renders symbol search results.
func SearchMarkdown(query string, results []marketdesk.SearchResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Search %q", query))
	if len(results) == 0 {
		doc.PlainText("No match.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Symbol", "Name", "Exchange", "Currency"},
		Rows:      [][]string{},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{r.Symbol.String(), r.Name, orDash(r.Exchange), orDash(r.Currency)})
	}
	doc.Table(table)
	return doc.String()
}
