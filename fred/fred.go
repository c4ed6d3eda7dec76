// Package fred reads macroeconomic series from the Federal Reserve Economic Data API.
package fred

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/date"
	"github.com/etnz/marketdesk/httpcache"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the FRED API root.
const DefaultBaseURL = "https://api.stlouisfed.org/fred"

const provider = "fred"

// Indicator is a FRED series shown in the economy view.
type Indicator struct {
	Name     string
	SeriesID string
}

// Indicators are the key economic indicators, in display order.
var Indicators = []Indicator{
	{"GDP", "GDP"},
	{"Unemployment", "UNRATE"},
	{"CPI", "CPIAUCSL"},
	{"Fed Funds Rate", "FEDFUNDS"},
	{"10Y Treasury", "DGS10"},
}

// Observation is one value of a series. FRED reports missing values as ".".
type Observation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// Float returns the numeric value, false when missing.
func (o Observation) Float() (float64, bool) {
	if o.Value == "." || o.Value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(o.Value, 64)
	return f, err == nil
}

// Day returns the observation date.
func (o Observation) Day() (date.Date, error) { return date.Parse(o.Date) }

// Reading is the latest observation of an indicator. Err is set when the series
// could not be read, and Observation is nil when the series is empty.
type Reading struct {
	Indicator   Indicator
	Observation *Observation
	Err         error
}

// Client is a FRED API client, valid between Open and Close.
type Client struct {
	apiKey  string
	baseURL string
	log     zerolog.Logger

	mu   sync.RWMutex
	http *http.Client
}

// NewClient creates a new FRED client. An empty baseURL means DefaultBaseURL.
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

// Series returns the latest limit observations of a series, newest first.
func (c *Client) Series(ctx context.Context, seriesID string, limit int) ([]Observation, error) {
	c.mu.RLock()
	client := c.http
	c.mu.RUnlock()
	if client == nil {
		return nil, marketdesk.ErrSessionClosed
	}
	params := url.Values{
		"series_id":  {seriesID},
		"api_key":    {c.apiKey},
		"file_type":  {"json"},
		"sort_order": {"desc"},
		"limit":      {strconv.Itoa(limit)},
	}
	var resp struct {
		Observations []Observation `json:"observations"`
	}
	if err := marketdesk.GetJSON(ctx, client, provider, c.baseURL+"/series/observations?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Observations, nil
}

// Latest reads the latest observation of every Indicator concurrently. A failing
// series is reported in its Reading and does not affect the others.
func (c *Client) Latest(ctx context.Context) []Reading {
	readings := make([]Reading, len(Indicators))
	var g errgroup.Group
	for i, ind := range Indicators {
		g.Go(func() error {
			readings[i].Indicator = ind
			obs, err := c.Series(ctx, ind.SeriesID, 1)
			if err != nil {
				c.log.Debug().Err(err).Str("series", ind.SeriesID).Msg("series failed")
				readings[i].Err = err
				return nil
			}
			if len(obs) > 0 {
				readings[i].Observation = &obs[0]
			}
			return nil
		})
	}
	_ = g.Wait()
	return readings
}
