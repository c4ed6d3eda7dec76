package marketdesk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSymbol(t *testing.T) {
	assert.Equal(t, Symbol("AAPL"), NewSymbol(" aapl "))
	assert.True(t, NewSymbol("^gspc").IsIndex())
	assert.False(t, NewSymbol("AAPL").IsIndex())
	assert.Equal(t, Symbols("AAPL", "MSFT"), Unique(Symbols("aapl", "MSFT", "AAPL")))
}

func TestSymbol_JSONIsNormalized(t *testing.T) {
	var q Quote
	require.NoError(t, json.Unmarshal([]byte(`{"symbol":"brk.b","price":1}`), &q))
	assert.Equal(t, Symbol("BRK.B"), q.Symbol)

	var h Holdings
	require.NoError(t, json.Unmarshal([]byte(`{"nvda":{"shares":1,"total_cost":2}}`), &h))
	assert.Contains(t, h, Symbol("NVDA"))
}

func TestQuote_Direction(t *testing.T) {
	assert.Equal(t, "up", Quote{Change: 1}.Direction())
	assert.Equal(t, "down", Quote{Change: -1}.Direction())
	assert.Equal(t, "neutral", Quote{}.Direction())
}

func TestPriceChangeSet_Get(t *testing.T) {
	var p PriceChangeSet
	require.NoError(t, json.Unmarshal([]byte(`{"symbol":"AAPL","1D":1.2,"ytd":-3.4,"10Y":250}`), &p))

	v, ok := p.Get("1D")
	assert.True(t, ok)
	assert.Equal(t, 1.2, v)
	v, ok = p.Get("YTD")
	assert.True(t, ok)
	assert.Equal(t, -3.4, v)
	_, ok = p.Get("5Y")
	assert.False(t, ok)
}
