package fmp

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/etnz/marketdesk"
)

// Profile returns the company profile of symbol.
func (c *Client) Profile(ctx context.Context, symbol marketdesk.Symbol) (marketdesk.Profile, error) {
	return single[marketdesk.Profile](ctx, c, true, "/profile", symbol)
}

// Ratios returns the trailing twelve month ratios of symbol.
func (c *Client) Ratios(ctx context.Context, symbol marketdesk.Symbol) (marketdesk.Ratios, error) {
	return single[marketdesk.Ratios](ctx, c, true, "/ratios-ttm", symbol)
}

// KeyMetrics returns the trailing twelve month key metrics of symbol.
func (c *Client) KeyMetrics(ctx context.Context, symbol marketdesk.Symbol) (marketdesk.KeyMetrics, error) {
	return single[marketdesk.KeyMetrics](ctx, c, true, "/key-metrics-ttm", symbol)
}

func statements[T any](ctx context.Context, c *Client, endpoint string, symbol marketdesk.Symbol, period marketdesk.StatementPeriod, limit int) ([]T, error) {
	params := url.Values{
		"symbol": {symbol.String()},
		"limit":  {strconv.Itoa(limit)},
		"period": {string(period)},
	}
	var raw json.RawMessage
	if err := c.get(ctx, true, endpoint, params, &raw); err != nil {
		return nil, err
	}
	l, err := list[T](raw)
	if err != nil {
		return nil, &marketdesk.GatewayError{Message: "fmp: invalid statement: " + err.Error()}
	}
	return l, nil
}

// IncomeStatements returns the last limit income statements, newest first.
func (c *Client) IncomeStatements(ctx context.Context, symbol marketdesk.Symbol, period marketdesk.StatementPeriod, limit int) ([]marketdesk.IncomeStatement, error) {
	return statements[marketdesk.IncomeStatement](ctx, c, "/income-statement", symbol, period, limit)
}

// BalanceSheets returns the last limit balance sheets, newest first.
func (c *Client) BalanceSheets(ctx context.Context, symbol marketdesk.Symbol, period marketdesk.StatementPeriod, limit int) ([]marketdesk.BalanceSheet, error) {
	return statements[marketdesk.BalanceSheet](ctx, c, "/balance-sheet-statement", symbol, period, limit)
}

// CashFlows returns the last limit cash flow statements, newest first.
func (c *Client) CashFlows(ctx context.Context, symbol marketdesk.Symbol, period marketdesk.StatementPeriod, limit int) ([]marketdesk.CashFlowStatement, error) {
	return statements[marketdesk.CashFlowStatement](ctx, c, "/cash-flow-statement", symbol, period, limit)
}
