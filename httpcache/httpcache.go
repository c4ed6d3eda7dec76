// Package httpcache provides http transports that log round trips and keep slow-moving
// responses on disk until the end of a calendar period.
package httpcache

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/marketdesk/date"
	"github.com/rs/zerolog"
)

// Transport is a disk cache for HTTP responses. Entries expire at the end of Period.
type Transport struct {
	Base   http.RoundTripper
	Dir    string      // defaults to os.TempDir()
	Period date.Period // defaults to daily
	Log    zerolog.Logger

	today func() date.Date
}

// RoundTrip returns a cached response of the current period if any, otherwise it performs
// the request and caches successful responses.
func (c *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	key := c.key(req)

	if cached, err := c.get(key, req); err == nil {
		c.Log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Bool("cached", true).Msg("http")
		return cached, nil
	}

	start := time.Now()
	resp, err := c.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.Log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).
		Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("http")
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		c.Log.Warn().Err(err).Msg("cache write failed (ignored)")
	}
	return resp, nil
}

func (c *Transport) base() http.RoundTripper {
	if c.Base == nil {
		return http.DefaultTransport
	}
	return c.Base
}

func (c *Transport) dir() string {
	if c.Dir == "" {
		return os.TempDir()
	}
	return c.Dir
}

// key is unique per period, so entries expire when the period changes.
func (c *Transport) key(req *http.Request) string {
	today := date.Today
	if c.today != nil {
		today = c.today
	}
	start := today().StartOf(c.Period)
	key := fmt.Sprintf("%s %s %s", start, req.Method, req.URL.String())
	return fmt.Sprintf("%s-%x", c.Period, sha1.Sum([]byte(key)))
}

// get retrieves a cached response from disk
func (c *Transport) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *Transport) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir(), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir(), key), content, 0o644)
}

// NewClient returns an http.Client caching responses in dir until the end of period.
func NewClient(dir string, period date.Period, log zerolog.Logger) *http.Client {
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: &Transport{Dir: dir, Period: period, Log: log},
	}
}

// logging is a transport that only logs round trips.
type logging struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (l logging) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := l.base.RoundTrip(req)
	if err != nil {
		l.log.Debug().Err(err).Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Msg("http")
		return nil, err
	}
	l.log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).
		Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).Msg("http")
	return resp, nil
}

// NewLoggingClient returns an http.Client without cache that logs every round trip.
func NewLoggingClient(log zerolog.Logger) *http.Client {
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: logging{base: http.DefaultTransport, log: log},
	}
}
