package renderer

import (
	"bytes"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/kalshi"
	md "github.com/nao1215/markdown"
)

func marketsTable(markets []kalshi.Market) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Market", "Yes", "No", "Change", "Volume 24h"},
		Rows:      [][]string{},
	}
	for _, m := range markets {
		table.Rows = append(table.Rows, []string{
			marketdesk.Truncate(m.Title, 50),
			kalshi.FormatCents(m.YesBid),
			kalshi.FormatCents(m.NoBid),
			kalshi.FormatChange(m),
			kalshi.FormatVolume(m.Volume24h),
		})
	}
	return table
}

// PredictionsMarkdown renders featured markets by category.
func PredictionsMarkdown(categories []kalshi.Category) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Prediction Markets")
	if len(categories) == 0 {
		doc.PlainText("No markets.")
		return doc.String()
	}
	for _, c := range categories {
		doc.H2(c.Name)
		doc.Table(marketsTable(c.Markets))
	}
	return doc.String()
}

// MarketsMarkdown renders a flat list of markets under a title.
func MarketsMarkdown(title string, markets []kalshi.Market) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if len(markets) == 0 {
		doc.PlainText("No markets.")
		return doc.String()
	}
	doc.Table(marketsTable(markets))
	return doc.String()
}
