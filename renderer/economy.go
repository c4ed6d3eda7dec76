package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/marketdesk/fred"
	md "github.com/nao1215/markdown"
)

// EconomyMarkdown renders the latest reading of the economic indicators.
func EconomyMarkdown(readings []fred.Reading) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Economic Indicators")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Indicator", "Value", "Date"},
		Rows:      [][]string{},
	}
	for _, r := range readings {
		value, day := "N/A", "-"
		if r.Observation != nil {
			day = r.Observation.Date
			if v, ok := r.Observation.Float(); ok {
				value = fmt.Sprintf("%.2f", v)
			}
		}
		table.Rows = append(table.Rows, []string{r.Indicator.Name, value, day})
	}
	doc.Table(table)
	return doc.String()
}
