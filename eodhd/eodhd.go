// Package eodhd fetches government bond yields from the EODHD real-time API.
package eodhd

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/httpcache"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the EODHD API root.
const DefaultBaseURL = "https://eodhd.com/api"

const provider = "eodhd"

// Client is an EODHD API client, valid between Open and Close.
type Client struct {
	apiKey  string
	baseURL string
	log     zerolog.Logger

	mu   sync.RWMutex
	http *http.Client
}

// NewClient creates a new EODHD client. An empty baseURL means DefaultBaseURL.
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

func (c *Client) get(ctx context.Context, endpoint string, data any) error {
	c.mu.RLock()
	client := c.http
	c.mu.RUnlock()
	if client == nil {
		return marketdesk.ErrSessionClosed
	}
	params := url.Values{"api_token": {c.apiKey}, "fmt": {"json"}}
	return marketdesk.GetJSON(ctx, client, provider, c.baseURL+endpoint+"?"+params.Encode(), data)
}
