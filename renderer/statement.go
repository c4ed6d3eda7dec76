package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/marketdesk"
	md "github.com/nao1215/markdown"
)

// line is a statement row: a label and how to read it from a statement.
type line[T any] struct {
	label string
	value func(T) *float64
}

var incomeLines = []line[marketdesk.IncomeStatement]{
	{"Revenue", func(s marketdesk.IncomeStatement) *float64 { return s.Revenue }},
	{"Cost of Revenue", func(s marketdesk.IncomeStatement) *float64 { return s.CostOfRevenue }},
	{"Gross Profit", func(s marketdesk.IncomeStatement) *float64 { return s.GrossProfit }},
	{"Operating Expenses", func(s marketdesk.IncomeStatement) *float64 { return s.OperatingExpenses }},
	{"Operating Income", func(s marketdesk.IncomeStatement) *float64 { return s.OperatingIncome }},
	{"Income Before Tax", func(s marketdesk.IncomeStatement) *float64 { return s.IncomeBeforeTax }},
	{"Net Income", func(s marketdesk.IncomeStatement) *float64 { return s.NetIncome }},
	{"EBITDA", func(s marketdesk.IncomeStatement) *float64 { return s.EBITDA }},
}

var balanceLines = []line[marketdesk.BalanceSheet]{
	{"Total Assets", func(s marketdesk.BalanceSheet) *float64 { return s.TotalAssets }},
	{"Current Assets", func(s marketdesk.BalanceSheet) *float64 { return s.TotalCurrentAssets }},
	{"Cash & Equivalents", func(s marketdesk.BalanceSheet) *float64 { return s.CashAndEquivalents }},
	{"Inventory", func(s marketdesk.BalanceSheet) *float64 { return s.Inventory }},
	{"Goodwill", func(s marketdesk.BalanceSheet) *float64 { return s.Goodwill }},
	{"Total Liabilities", func(s marketdesk.BalanceSheet) *float64 { return s.TotalLiabilities }},
	{"Current Liabilities", func(s marketdesk.BalanceSheet) *float64 { return s.TotalCurrentLiabilities }},
	{"Long-Term Debt", func(s marketdesk.BalanceSheet) *float64 { return s.LongTermDebt }},
	{"Total Debt", func(s marketdesk.BalanceSheet) *float64 { return s.TotalDebt }},
	{"Net Debt", func(s marketdesk.BalanceSheet) *float64 { return s.NetDebt }},
	{"Stockholders' Equity", func(s marketdesk.BalanceSheet) *float64 { return s.TotalStockholdersEquity }},
	{"Retained Earnings", func(s marketdesk.BalanceSheet) *float64 { return s.RetainedEarnings }},
}

var cashFlowLines = []line[marketdesk.CashFlowStatement]{
	{"Net Income", func(s marketdesk.CashFlowStatement) *float64 { return s.NetIncome }},
	{"D&A", func(s marketdesk.CashFlowStatement) *float64 { return s.DepreciationAmortization }},
	{"Stock-Based Comp.", func(s marketdesk.CashFlowStatement) *float64 { return s.StockBasedCompensation }},
	{"Operating Cash Flow", func(s marketdesk.CashFlowStatement) *float64 { return s.OperatingCashFlow }},
	{"Capital Expenditure", func(s marketdesk.CashFlowStatement) *float64 { return s.CapitalExpenditure }},
	{"Investing Cash Flow", func(s marketdesk.CashFlowStatement) *float64 { return s.InvestingCashFlow }},
	{"Buybacks", func(s marketdesk.CashFlowStatement) *float64 { return s.StockRepurchased }},
	{"Dividends Paid", func(s marketdesk.CashFlowStatement) *float64 { return s.DividendsPaid }},
	{"Financing Cash Flow", func(s marketdesk.CashFlowStatement) *float64 { return s.FinancingCashFlow }},
	{"Free Cash Flow", func(s marketdesk.CashFlowStatement) *float64 { return s.FreeCashFlow }},
}

// statementTable renders statements as columns, newest first, with one row per line.
func statementTable[T any](statements []T, header func(T) string, lines []line[T], cur marketdesk.Currency) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{""},
		Rows:      [][]string{},
	}
	for _, s := range statements {
		table.Header = append(table.Header, header(s))
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for _, l := range lines {
		row := []string{l.label}
		for _, s := range statements {
			row = append(row, compact(l.value(s), cur))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func statementDoc(title string, empty bool, table func() md.TableSet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if empty {
		doc.PlainText("No statements.")
		return doc.String()
	}
	doc.Table(table())
	return doc.String()
}

// IncomeMarkdown renders income statements.
func IncomeMarkdown(symbol marketdesk.Symbol, statements []marketdesk.IncomeStatement, cur marketdesk.Currency) string {
	header := func(s marketdesk.IncomeStatement) string { return s.Label() }
	return statementDoc(fmt.Sprintf("%s Income Statement", symbol), len(statements) == 0, func() md.TableSet {
		t := statementTable(statements, header, incomeLines, cur)
		eps := []string{"EPS (diluted)"}
		for _, s := range statements {
			eps = append(eps, marketdesk.Ratio(s.EPSDiluted))
		}
		t.Rows = append(t.Rows, eps)
		return t
	})
}

// BalanceMarkdown renders balance sheets.
func BalanceMarkdown(symbol marketdesk.Symbol, statements []marketdesk.BalanceSheet, cur marketdesk.Currency) string {
	header := func(s marketdesk.BalanceSheet) string { return s.Label() }
	return statementDoc(fmt.Sprintf("%s Balance Sheet", symbol), len(statements) == 0, func() md.TableSet {
		return statementTable(statements, header, balanceLines, cur)
	})
}

// CashFlowMarkdown renders cash flow statements.
func CashFlowMarkdown(symbol marketdesk.Symbol, statements []marketdesk.CashFlowStatement, cur marketdesk.Currency) string {
	header := func(s marketdesk.CashFlowStatement) string { return s.Label() }
	return statementDoc(fmt.Sprintf("%s Cash Flow", symbol), len(statements) == 0, func() md.TableSet {
		return statementTable(statements, header, cashFlowLines, cur)
	})
}
