package fmp

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/date"
)

// Quote returns the real-time quote of symbol.
func (c *Client) Quote(ctx context.Context, symbol marketdesk.Symbol) (marketdesk.Quote, error) {
	return single[marketdesk.Quote](ctx, c, false, "/quote", symbol)
}

// Quotes fetches quotes one by one concurrently, the stable API has no batch quote.
func (c *Client) Quotes(ctx context.Context, symbols []marketdesk.Symbol) ([]marketdesk.Quote, error) {
	return marketdesk.Quotes(ctx, c, symbols)
}

// PriceChanges returns the price change percentages of symbols over all horizons.
func (c *Client) PriceChanges(ctx context.Context, symbols []marketdesk.Symbol) ([]marketdesk.PriceChangeSet, error) {
	return marketdesk.FetchAll(ctx, symbols, func(ctx context.Context, s marketdesk.Symbol) (marketdesk.PriceChangeSet, error) {
		return single[marketdesk.PriceChangeSet](ctx, c, false, "/stock-price-change", s)
	})
}

// History returns daily bars between from and to, newest first as the API returns them.
func (c *Client) History(ctx context.Context, symbol marketdesk.Symbol, from, to date.Date) ([]marketdesk.HistoricalPrice, error) {
	params := url.Values{"symbol": {symbol.String()}}
	if !from.IsZero() {
		params.Set("from", from.String())
	}
	if !to.IsZero() {
		params.Set("to", to.String())
	}
	var raw json.RawMessage
	if err := c.get(ctx, false, "/historical-price-eod/full", params, &raw); err != nil {
		return nil, err
	}
	// older responses nest the rows under "historical".
	var nested struct {
		Historical []marketdesk.HistoricalPrice `json:"historical"`
	}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, &marketdesk.GatewayError{Message: "fmp: invalid history: " + err.Error()}
		}
		return nested.Historical, nil
	}
	prices, err := list[marketdesk.HistoricalPrice](raw)
	if err != nil {
		return nil, &marketdesk.GatewayError{Message: "fmp: invalid history: " + err.Error()}
	}
	return prices, nil
}
