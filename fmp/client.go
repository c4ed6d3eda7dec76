// Package fmp implements the marketdesk.Gateway on the Financial Modeling Prep stable API.
package fmp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/date"
	"github.com/etnz/marketdesk/httpcache"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the FMP stable API root.
const DefaultBaseURL = "https://financialmodelingprep.com/stable"

const provider = "fmp"

// Client is an FMP API client.
//
// Calls are only valid between Open and Close.
type Client struct {
	apiKey      string
	baseURL     string
	cacheDir    string
	cachePeriod date.Period
	log         zerolog.Logger

	mu     sync.RWMutex
	live   *http.Client // quotes, changes, history
	cached *http.Client // fundamentals
}

// NewClient creates a new FMP client. An empty baseURL means DefaultBaseURL.
func NewClient(apiKey, baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		log:     log.With().Str("client", provider).Logger(),
	}
}

// WithCache keeps fundamentals, statements and search results on disk until the end of
// the current period.
func (c *Client) WithCache(dir string, period date.Period) *Client {
	c.cacheDir, c.cachePeriod = dir, period
	return c
}

// Open acquires the http session.
func (c *Client) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.live = httpcache.NewLoggingClient(c.log)
	c.cached = c.live
	if c.cacheDir != "" {
		c.cached = httpcache.NewClient(c.cacheDir, c.cachePeriod, c.log)
	}
	c.log.Debug().Str("base_url", c.baseURL).Str("cache", c.cacheDir).Stringer("cache_period", c.cachePeriod).Msg("session opened")
	return nil
}

// Close releases the http session. Closing a closed client does nothing.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live == nil {
		return nil
	}
	c.live.CloseIdleConnections()
	c.cached.CloseIdleConnections()
	c.live, c.cached = nil, nil
	c.log.Debug().Msg("session closed")
	return nil
}

func (c *Client) session(cached bool) (*http.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.live == nil {
		return nil, marketdesk.ErrSessionClosed
	}
	if cached {
		return c.cached, nil
	}
	return c.live, nil
}

// get calls an endpoint with params and the api key, and decodes the JSON response.
func (c *Client) get(ctx context.Context, cached bool, endpoint string, params url.Values, data any) error {
	client, err := c.session(cached)
	if err != nil {
		return err
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.apiKey)
	return marketdesk.GetJSON(ctx, client, provider, c.baseURL+endpoint+"?"+params.Encode(), data)
}

// list decodes a response that is either a list, a single object, or empty.
func list[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("{}")):
		return nil, nil
	case raw[0] == '{':
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return []T{v}, nil
	default:
		var l []T
		err := json.Unmarshal(raw, &l)
		return l, err
	}
}

// single fetches a singular entity for symbol, a *SymbolNotFoundError if the response is empty.
func single[T any](ctx context.Context, c *Client, cached bool, endpoint string, symbol marketdesk.Symbol) (T, error) {
	var zero T
	var raw json.RawMessage
	if err := c.get(ctx, cached, endpoint, url.Values{"symbol": {symbol.String()}}, &raw); err != nil {
		return zero, err
	}
	l, err := list[T](raw)
	if err != nil {
		return zero, &marketdesk.GatewayError{Message: "fmp: invalid response: " + err.Error()}
	}
	if len(l) == 0 {
		return zero, &marketdesk.SymbolNotFoundError{Symbol: symbol}
	}
	return l[0], nil
}

// ensure Client implements the Gateway interface.
var _ marketdesk.Gateway = (*Client)(nil)
