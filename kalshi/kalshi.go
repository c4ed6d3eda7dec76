// Package kalshi reads prediction markets from the public Kalshi trade API.
package kalshi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/httpcache"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the public trade API root.
const DefaultBaseURL = "https://api.elections.kalshi.com/trade-api/v2"

const provider = "kalshi"

// maxEvents caps the events whose markets are listed by Markets.
const maxEvents = 30

// Event groups related markets.
type Event struct {
	EventTicker  string `json:"event_ticker"`
	SeriesTicker string `json:"series_ticker"`
	Title        string `json:"title"`
	Category     string `json:"category"`
}

// Client is a read-only Kalshi client, valid between Open and Close.
type Client struct {
	baseURL string
	log     zerolog.Logger

	mu   sync.RWMutex
	http *http.Client
}

// NewClient creates a new Kalshi client. An empty baseURL means DefaultBaseURL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		log:     log.With().Str("client", provider).Logger(),
	}
}

// Open acquires the http session.
func (c *Client) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.http = httpcache.NewLoggingClient(c.log)
	return nil
}

// Close releases the http session.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.http != nil {
		c.http.CloseIdleConnections()
		c.http = nil
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, data any) error {
	c.mu.RLock()
	client := c.http
	c.mu.RUnlock()
	if client == nil {
		return marketdesk.ErrSessionClosed
	}
	addr := c.baseURL + endpoint
	if len(params) > 0 {
		addr += "?" + params.Encode()
	}
	return marketdesk.GetJSON(ctx, client, provider, addr, data)
}

// Events lists the open events.
func (c *Client) Events(ctx context.Context, limit int) ([]Event, error) {
	var resp struct {
		Events []Event `json:"events"`
	}
	if err := c.get(ctx, "/events", url.Values{"limit": {strconv.Itoa(limit)}}, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *Client) markets(ctx context.Context, params url.Values) ([]Market, error) {
	var resp struct {
		Markets []Market `json:"markets"`
	}
	if err := c.get(ctx, "/markets", params, &resp); err != nil {
		return nil, err
	}
	return resp.Markets, nil
}

// EventMarkets lists the markets of an event.
func (c *Client) EventMarkets(ctx context.Context, eventTicker string) ([]Market, error) {
	return c.markets(ctx, url.Values{"event_ticker": {eventTicker}})
}

// SeriesMarkets lists the markets of a series, like "KXFED".
func (c *Client) SeriesMarkets(ctx context.Context, seriesTicker string) ([]Market, error) {
	return c.markets(ctx, url.Values{"series_ticker": {seriesTicker}})
}

// Markets lists the markets of the first events, deduplicated by ticker, up to limit.
// Events whose markets cannot be read are skipped.
func (c *Client) Markets(ctx context.Context, limit int) ([]Market, error) {
	events, err := c.Events(ctx, 50)
	if err != nil {
		return nil, err
	}
	if len(events) > maxEvents {
		events = events[:maxEvents]
	}
	perEvent := make([][]Market, len(events))
	var g errgroup.Group
	for i, e := range events {
		if e.EventTicker == "" {
			continue
		}
		g.Go(func() error {
			markets, err := c.EventMarkets(ctx, e.EventTicker)
			if err != nil {
				c.log.Debug().Err(err).Str("event", e.EventTicker).Msg("event skipped")
				return nil
			}
			perEvent[i] = markets
			return nil
		})
	}
	_ = g.Wait()
	return limited(dedupe(perEvent), limit), nil
}

// Market returns a single market by ticker.
func (c *Client) Market(ctx context.Context, ticker string) (Market, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/markets/"+url.PathEscape(ticker), nil, &raw); err != nil {
		return Market{}, err
	}
	var wrapped struct {
		Market *Market `json:"market"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Market != nil {
		return *wrapped.Market, nil
	}
	var m Market
	if err := json.Unmarshal(raw, &m); err != nil {
		return Market{}, &marketdesk.GatewayError{Message: "kalshi: invalid market: " + err.Error()}
	}
	return m, nil
}

// dedupe flattens lists of markets keeping the first occurrence of each ticker.
func dedupe(lists [][]Market) []Market {
	seen := make(map[string]bool)
	var all []Market
	for _, l := range lists {
		for _, m := range l {
			if seen[m.Ticker] {
				continue
			}
			seen[m.Ticker] = true
			all = append(all, m)
		}
	}
	return all
}

func limited(markets []Market, limit int) []Market {
	if limit > 0 && len(markets) > limit {
		return markets[:limit]
	}
	return markets
}
