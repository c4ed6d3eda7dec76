package fmp

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/etnz/marketdesk"
)

// News returns the latest articles about symbol, or market news when symbol is empty.
func (c *Client) News(ctx context.Context, symbol marketdesk.Symbol, limit int) ([]marketdesk.NewsArticle, error) {
	params := url.Values{"limit": {strconv.Itoa(limit)}, "page": {"0"}}
	endpoint := "/news/stock-latest"
	if symbol != "" {
		endpoint = "/news/stock"
		params.Set("symbols", symbol.String())
	}
	var raw json.RawMessage
	if err := c.get(ctx, false, endpoint, params, &raw); err != nil {
		return nil, err
	}
	// some endpoints wrap the list in a "content" object.
	var wrapped struct {
		Content []marketdesk.NewsArticle `json:"content"`
	}
	if len(raw) > 0 && raw[0] == '{' && json.Unmarshal(raw, &wrapped) == nil && wrapped.Content != nil {
		return wrapped.Content, nil
	}
	articles, err := list[marketdesk.NewsArticle](raw)
	if err != nil {
		return nil, &marketdesk.GatewayError{Message: "fmp: invalid news: " + err.Error()}
	}
	return articles, nil
}

// Search looks up symbols by company name or ticker.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]marketdesk.SearchResult, error) {
	params := url.Values{"query": {query}, "limit": {strconv.Itoa(limit)}}
	var raw json.RawMessage
	if err := c.get(ctx, true, "/search-name", params, &raw); err != nil {
		return nil, err
	}
	results, err := list[marketdesk.SearchResult](raw)
	if err != nil {
		return nil, &marketdesk.GatewayError{Message: "fmp: invalid search: " + err.Error()}
	}
	return results, nil
}
