package httpcache

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/etnz/marketdesk/date"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestTransport_CachesWithinPeriod(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[{"symbol":"AAPL"}]`))
	}))
	defer server.Close()

	today := date.New(2025, 3, 14)
	transport := &Transport{Dir: t.TempDir(), Period: date.Monthly, Log: zerolog.Nop(), today: func() date.Date { return today }}
	client := &http.Client{Transport: transport}

	_, body := get(t, client, server.URL+"/profile?symbol=AAPL")
	assert.Equal(t, `[{"symbol":"AAPL"}]`, body)
	_, body = get(t, client, server.URL+"/profile?symbol=AAPL")
	assert.Equal(t, `[{"symbol":"AAPL"}]`, body)
	assert.Equal(t, int32(1), hits.Load())

	// same month, still cached.
	today = date.New(2025, 3, 31)
	get(t, client, server.URL+"/profile?symbol=AAPL")
	assert.Equal(t, int32(1), hits.Load())

	// next month expires the entry.
	today = date.New(2025, 4, 1)
	get(t, client, server.URL+"/profile?symbol=AAPL")
	assert.Equal(t, int32(2), hits.Load())

	// another url is another entry.
	get(t, client, server.URL+"/profile?symbol=MSFT")
	assert.Equal(t, int32(3), hits.Load())
}

func TestTransport_DoesNotCacheErrors(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(t.TempDir(), date.Daily, zerolog.Nop())
	status, _ := get(t, client, server.URL)
	assert.Equal(t, http.StatusTooManyRequests, status)
	get(t, client, server.URL)
	assert.Equal(t, int32(2), hits.Load())
}

func TestLoggingClient(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewLoggingClient(zerolog.Nop())
	_, body := get(t, client, server.URL)
	get(t, client, server.URL)
	assert.Equal(t, "ok", body)
	assert.Equal(t, int32(2), hits.Load())
}
