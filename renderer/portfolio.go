package renderer

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/date"
	md "github.com/nao1215/markdown"
)

var (
	dayLabel   = date.Daily.ToDateName()
	monthLabel = date.Monthly.ToDateName()
	yearLabel  = date.Yearly.ToDateName()
)

// PortfolioMarkdown renders holdings by decreasing value, followed by the totals.
//
// Totals carry a currency symbol only when all holdings share the same currency.
func PortfolioMarkdown(holdings []marketdesk.Holding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Portfolio")
	if len(holdings) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}
	holdings = slices.Clone(holdings)
	slices.SortStableFunc(holdings, func(a, b marketdesk.Holding) int { return cmp.Compare(b.Value, a.Value) })

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Shares", "Cost/Share", "Price", "Value", "Gain/Loss", "Gain %", dayLabel, monthLabel, yearLabel},
		Rows:   [][]string{},
	}
	for _, h := range holdings {
		cur := h.Currency()
		table.Rows = append(table.Rows, []string{
			h.Symbol.String(),
			quantity(h.Shares),
			money(h.CostBasis, cur),
			money(h.Price, cur),
			money(h.Value, cur),
			signed(h.GainLoss, cur),
			percent(h.GainLossPercent),
			change(h.Day, cur),
			change(h.MTD, cur),
			change(h.YTD, cur),
		})
	}
	doc.Table(table)

	cur, mixed := totalsCurrency(holdings)
	t := marketdesk.Total(holdings)
	doc.H2("Totals")
	if mixed {
		doc.PlainText("Holdings are in several currencies, totals are plain sums without a currency.")
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{md.Bold("Total Value"), md.Bold(money(t.Value, cur)), ""},
		Rows: [][]string{
			{"Total Cost", money(t.Cost, cur), ""},
			{"Gain/Loss", signed(t.GainLoss, cur), percent(t.GainLossPercent)},
			{dayLabel, signed(t.Day.Value, cur), percent(t.Day.Percent)},
			{monthLabel, signed(t.MTD.Value, cur), percent(t.MTD.Percent)},
			{yearLabel, signed(t.YTD.Value, cur), percent(t.YTD.Percent)},
		},
	})
	return doc.String()
}

// totalsCurrency returns the currency shared by all holdings. When they differ, it returns
// a two decimals currency without symbol and mixed is true.
func totalsCurrency(holdings []marketdesk.Holding) (cur marketdesk.Currency, mixed bool) {
	cur = holdings[0].Currency()
	for _, h := range holdings[1:] {
		if h.Currency() != cur {
			return marketdesk.Currency{Code: marketdesk.USD.Code}, true
		}
	}
	return cur, false
}

func change(c marketdesk.Change, cur marketdesk.Currency) string {
	if c.Value == 0 && c.Percent == 0 {
		return "-"
	}
	return signed(c.Value, cur) + " (" + percent(c.Percent) + ")"
}
