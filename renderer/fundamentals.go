package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/marketdesk"
	md "github.com/nao1215/markdown"
)

// ProfileMarkdown renders a company profile.
func ProfileMarkdown(p marketdesk.Profile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := marketdesk.CurrencyOf(p.Exchange)

	doc.H1(fmt.Sprintf("%s %s", p.Symbol, p.CompanyName))
	employees := "-"
	if p.Employees != nil {
		employees = *p.Employees
	}
	ipo := "-"
	if p.IPODate != nil {
		ipo = *p.IPODate
	}
	website := orDash(p.Website)
	if p.Website != "" {
		website = md.Link(p.Website, p.Website)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Field", "Value"},
		Rows: [][]string{
			{"Sector", orDash(p.Sector)},
			{"Industry", orDash(p.Industry)},
			{"CEO", orDash(p.CEO)},
			{"Employees", employees},
			{"Headquarters", orDash(joinNonEmpty(p.City, p.Country))},
			{"Exchange", orDash(p.Exchange)},
			{"IPO Date", ipo},
			{"Market Cap", marketdesk.FormatMarketCap(p.MarketCap, cur)},
			{"Price", money(p.Price, cur)},
			{"Beta", marketdesk.Ratio(p.Beta)},
			{"Last Dividend", compact(p.LastDividend, cur)},
			{"DCF", compact(p.DCF, cur)},
			{"Website", website},
		},
	})
	if p.Description != "" {
		doc.H2("Description")
		doc.PlainText(p.Description)
	}
	return doc.String()
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + ", " + b
	}
}

// ratio values are fractions, displayed as percents.
func fraction(v *float64) string {
	if v == nil {
		return "-"
	}
	return marketdesk.Percent(*v * 100).String()
}

// RatiosMarkdown renders the TTM ratios and key metrics of a symbol.
func RatiosMarkdown(symbol marketdesk.Symbol, r marketdesk.Ratios, k marketdesk.KeyMetrics, cur marketdesk.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("%s Ratios (TTM)", symbol))

	section := func(title string, rows [][]string) {
		doc.H2(title)
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Ratio", "Value"},
			Rows:      rows,
		})
	}
	section("Valuation", [][]string{
		{"P/E", marketdesk.Ratio(r.PE)},
		{"PEG", marketdesk.Ratio(r.PEG)},
		{"P/B", marketdesk.Ratio(r.PriceToBook)},
		{"P/S", marketdesk.Ratio(r.PriceToSales)},
		{"EV/Sales", marketdesk.Ratio(k.EVToSales)},
		{"EV/EBITDA", marketdesk.Ratio(k.EVToEBITDA)},
		{"EV/FCF", marketdesk.Ratio(k.EVToFreeCashFlow)},
		{"Enterprise Value", compact(k.EnterpriseValue, cur)},
	})
	section("Profitability", [][]string{
		{"Gross Margin", fraction(r.GrossProfitMargin)},
		{"Operating Margin", fraction(r.OperatingProfitMargin)},
		{"Net Margin", fraction(r.NetProfitMargin)},
		{"ROE", fraction(r.ReturnOnEquity)},
		{"ROA", fraction(r.ReturnOnAssets)},
		{"ROIC", fraction(k.ROIC)},
	})
	section("Liquidity & Leverage", [][]string{
		{"Current Ratio", marketdesk.Ratio(r.CurrentRatio)},
		{"Quick Ratio", marketdesk.Ratio(r.QuickRatio)},
		{"Cash Ratio", marketdesk.Ratio(r.CashRatio)},
		{"Debt Ratio", marketdesk.Ratio(r.DebtRatio)},
		{"Debt/Equity", marketdesk.Ratio(r.DebtToEquity)},
		{"Net Debt/EBITDA", marketdesk.Ratio(k.NetDebtToEBITDA)},
		{"Interest Coverage", marketdesk.Ratio(r.InterestCoverage)},
	})
	section("Per Share & Dividends", [][]string{
		{"Revenue/Share", compact(k.RevenuePerShare, cur)},
		{"Book Value/Share", compact(k.BookValuePerShare, cur)},
		{"FCF/Share", compact(k.FreeCashFlowPerShare, cur)},
		{"Graham Number", compact(k.GrahamNumber, cur)},
		{"Dividend Yield", fraction(r.DividendYield)},
		{"Payout Ratio", fraction(r.PayoutRatio)},
	})
	return doc.String()
}
