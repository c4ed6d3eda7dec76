package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/eodhd"
	md "github.com/nao1215/markdown"
)

// BondsMarkdown renders the yields of a country.
func BondsMarkdown(country eodhd.Country, bonds []eodhd.Bond) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("%s Government Bonds", country.Name))
	if len(bonds) == 0 {
		doc.PlainText("No yields available.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Maturity", "Yield", "Change"},
		Rows:      [][]string{},
	}
	for _, b := range bonds {
		change := "-"
		if b.Change != nil {
			change = fmt.Sprintf("%+.3f", *b.Change)
		}
		table.Rows = append(table.Rows, []string{b.Maturity, marketdesk.Percent(b.Yield).String(), change})
	}
	doc.Table(table)
	return doc.String()
}

// BondSnapshotMarkdown renders the international yields overview.
func BondSnapshotMarkdown(snapshots []eodhd.CountrySnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("International Government Bonds")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Country"},
		Rows:      [][]string{},
	}
	for _, m := range eodhd.SnapshotMaturities {
		table.Header = append(table.Header, m)
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for _, s := range snapshots {
		row := []string{fmt.Sprintf("%s (%s)", s.Country.Name, s.Country.Code)}
		for _, m := range eodhd.SnapshotMaturities {
			if y, ok := s.Yields[m]; ok {
				row = append(row, marketdesk.Percent(y).String())
			} else {
				row = append(row, "-")
			}
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}
