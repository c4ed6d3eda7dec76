package marketdesk

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/marketdesk/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPortfolio(holdings Holdings, gw *fakeGateway) (*Portfolio, *memoryHoldings) {
	store := &memoryHoldings{holdings: holdings}
	p := NewPortfolio(store, gw)
	p.today = func() date.Date { return date.New(2025, 3, 14) }
	return p, store
}

func findHolding(t *testing.T, holdings []Holding, s Symbol) Holding {
	t.Helper()
	for _, h := range holdings {
		if h.Symbol == s {
			return h
		}
	}
	t.Fatalf("holding %s not found in %v", s, holdings)
	return Holding{}
}

func TestPortfolio_AddSumsTotalCost(t *testing.T) {
	p, _ := newTestPortfolio(nil, newFakeGateway())

	s1, c1 := 10.0, 1500.25
	s2, c2 := 5.0, 800.10
	require.NoError(t, p.Add("aapl", s1, c1))
	require.NoError(t, p.Add("AAPL", s2, c2))

	rec := p.Holdings()["AAPL"]
	assert.Equal(t, s1+s2, rec.Shares)
	assert.Equal(t, c1+c2, rec.TotalCost)
}

func TestPortfolio_AddNeverAveragesPerSharePrice(t *testing.T) {
	p, _ := newTestPortfolio(nil, newFakeGateway())

	// The cost argument is what was paid in total. A per-share average would store
	// 20 shares at (10×1000 + 10×3000)/20, i.e. a total cost of 40000.
	require.NoError(t, p.Add("MSFT", 10, 1000))
	require.NoError(t, p.Add("MSFT", 10, 3000))

	rec := p.Holdings()["MSFT"]
	assert.Equal(t, 20.0, rec.Shares)
	assert.Equal(t, 4000.0, rec.TotalCost)
}

func TestPortfolio_AddRejectsNegativeAmounts(t *testing.T) {
	p, store := newTestPortfolio(nil, newFakeGateway())
	assert.Error(t, p.Add("AAPL", -1, 100))
	assert.Error(t, p.Add("AAPL", 1, -100))
	assert.Zero(t, store.saves)
}

func TestPortfolio_RemoveAndUpdateMissingSymbol(t *testing.T) {
	p, store := newTestPortfolio(Holdings{"AAPL": {Shares: 1, TotalCost: 100}}, newFakeGateway())

	err := p.Remove("X")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	var nf *HoldingNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, Symbol("X"), nf.Symbol)

	err = p.UpdateShares("x", 5)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Zero(t, store.saves)
	assert.Equal(t, Holdings{"AAPL": {Shares: 1, TotalCost: 100}}, store.holdings)
}

func TestPortfolio_Remove(t *testing.T) {
	p, store := newTestPortfolio(Holdings{"AAPL": {Shares: 1, TotalCost: 100}, "MSFT": {Shares: 2, TotalCost: 600}}, newFakeGateway())
	require.NoError(t, p.Remove("aapl"))
	assert.Equal(t, Holdings{"MSFT": {Shares: 2, TotalCost: 600}}, store.holdings)
	assert.Equal(t, 1, store.saves)
}

func TestPortfolio_UpdateSharesKeepsTotalCost(t *testing.T) {
	p, _ := newTestPortfolio(Holdings{"AAPL": {Shares: 10, TotalCost: 1500}}, newFakeGateway())
	require.NoError(t, p.UpdateShares("AAPL", 20))

	rec := p.Holdings()["AAPL"]
	assert.Equal(t, 20.0, rec.Shares)
	assert.Equal(t, 1500.0, rec.TotalCost)
}

func TestPortfolio_ValuateEmptyMakesNoCall(t *testing.T) {
	gw := newFakeGateway()
	p, _ := newTestPortfolio(nil, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, gw.Calls())
}

func TestPortfolio_ValuateGainLossUsesStoredTotalCost(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Name: "Apple Inc.", Price: 331.89, Exchange: "NASDAQ"}
	p, _ := newTestPortfolio(Holdings{"AAPL": {Shares: 80, TotalCost: 26624.00}}, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	h := got[0]
	assert.InDelta(t, 26551.20, h.Value, 0.001)
	assert.Equal(t, 26624.00, h.TotalCost)
	assert.InDelta(t, 332.80, h.CostBasis, 0.001)
	assert.InDelta(t, -72.80, h.GainLoss, 0.001)
	assert.InDelta(t, -0.27, h.GainLossPercent, 0.005)
}

func TestPortfolio_ValuateYTDFromPriceChanges(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 175.00}
	gw.changes["AAPL"] = PriceChangeSet{Symbol: "AAPL", YTD: ptr(12.5)}
	p, _ := newTestPortfolio(Holdings{"AAPL": {Shares: 100, TotalCost: 15000}}, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	h := findHolding(t, got, "AAPL")
	assert.Equal(t, 12.5, h.YTD.Percent)
	assert.InDelta(t, 1944.44, h.YTD.Value, 0.01)
}

func TestPortfolio_ValuateYTDEdgeCases(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["WIPE"] = Quote{Symbol: "WIPE", Price: 1}
	gw.quotes["NOYTD"] = Quote{Symbol: "NOYTD", Price: 10}
	gw.quotes["NOSET"] = Quote{Symbol: "NOSET", Price: 10}
	gw.changes["WIPE"] = PriceChangeSet{Symbol: "WIPE", YTD: ptr(-100)}
	gw.changes["NOYTD"] = PriceChangeSet{Symbol: "NOYTD", OneDay: ptr(1)}
	p, _ := newTestPortfolio(Holdings{
		"WIPE":  {Shares: 1, TotalCost: 10},
		"NOYTD": {Shares: 1, TotalCost: 10},
		"NOSET": {Shares: 1, TotalCost: 10},
	}, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	assert.Zero(t, findHolding(t, got, "WIPE").YTD.Value)
	assert.Equal(t, Change{}, findHolding(t, got, "NOYTD").YTD)
	assert.Equal(t, Change{}, findHolding(t, got, "NOSET").YTD)
}

func TestPortfolio_ValuateDayChangeFromQuote(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 100, Change: -2, ChangePercent: -1.96}
	p, _ := newTestPortfolio(Holdings{"AAPL": {Shares: 10, TotalCost: 900}}, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Change{Value: -20, Percent: -1.96}, got[0].Day)
}

func TestPortfolio_ValuateMTDFromFirstCloseOfMonth(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 110}
	gw.history["AAPL"] = []HistoricalPrice{
		// newest first, as the provider returns them.
		{Date: date.New(2025, 3, 4), Close: 104},
		{Date: date.New(2025, 3, 3), Close: 100},
		{Date: date.New(2025, 2, 28), Close: 90},
	}
	p, _ := newTestPortfolio(Holdings{"AAPL": {Shares: 10, TotalCost: 900}}, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	h := findHolding(t, got, "AAPL")
	assert.InDelta(t, 10.0, h.MTD.Percent, 1e-9)
	assert.InDelta(t, 100.0, h.MTD.Value, 1e-9)
}

func TestPortfolio_ValuateMTDFailureIsIsolated(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 110}
	gw.quotes["MSFT"] = Quote{Symbol: "MSFT", Price: 420}
	gw.quotes["NVDA"] = Quote{Symbol: "NVDA", Price: 50}
	gw.history["AAPL"] = []HistoricalPrice{{Date: date.New(2025, 3, 3), Close: 100}}
	gw.historyErr["MSFT"] = &GatewayError{Message: "boom", StatusCode: 500}
	// NVDA has no rows this month.
	p, _ := newTestPortfolio(Holdings{
		"AAPL": {Shares: 1, TotalCost: 100},
		"MSFT": {Shares: 1, TotalCost: 400},
		"NVDA": {Shares: 1, TotalCost: 40},
	}, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, 10.0, findHolding(t, got, "AAPL").MTD.Value, 1e-9)
	assert.Equal(t, Change{}, findHolding(t, got, "MSFT").MTD)
	assert.Equal(t, Change{}, findHolding(t, got, "NVDA").MTD)
	assert.InDelta(t, 20.0, findHolding(t, got, "MSFT").GainLoss, 1e-9)
}

func TestPortfolio_ValuateMTDZeroStartPrice(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 110, Change: 2, ChangePercent: 1.85}
	gw.changes["AAPL"] = PriceChangeSet{Symbol: "AAPL", YTD: ptr(10)}
	gw.history["AAPL"] = []HistoricalPrice{
		{Date: date.New(2025, 3, 4), Close: 104},
		{Date: date.New(2025, 3, 3), Close: 0},
	}
	p, _ := newTestPortfolio(Holdings{"AAPL": {Shares: 10, TotalCost: 1000}}, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	h := findHolding(t, got, "AAPL")
	assert.Equal(t, Change{}, h.MTD)
	assert.InDelta(t, 1100.0, h.Value, 1e-9)
	assert.InDelta(t, 100.0, h.GainLoss, 1e-9)
	assert.InDelta(t, 10.0, h.GainLossPercent, 1e-9)
	assert.Equal(t, Change{Value: 20, Percent: 1.85}, h.Day)
	assert.InDelta(t, 10.0, h.YTD.Percent, 1e-9)
	assert.InDelta(t, 100.0, h.YTD.Value, 1e-9)
}

func TestPortfolio_ValuateSkipsHoldingsWithoutQuote(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 100}
	gw.quoteErr["BOOM"] = errors.New("connection reset")
	p, _ := newTestPortfolio(Holdings{
		"AAPL":   {Shares: 1, TotalCost: 100},
		"DELIST": {Shares: 1, TotalCost: 100},
		"BOOM":   {Shares: 1, TotalCost: 100},
	}, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Symbol("AAPL"), got[0].Symbol)
}

func TestPortfolio_ValuatePriceChangesFailureDegrades(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 100}
	gw.changesErr = &RateLimitError{Provider: "fmp"}
	p, _ := newTestPortfolio(Holdings{"AAPL": {Shares: 1, TotalCost: 100}}, gw)

	got, err := p.Valuate(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Change{}, got[0].YTD)
}

func TestPortfolio_ValuateQuoteTransportFailurePropagates(t *testing.T) {
	gw := newFakeGateway()
	gw.quoteErr["AAPL"] = &GatewayError{Message: "bad gateway", StatusCode: 502}
	gw.quoteErr["MSFT"] = &GatewayError{Message: "bad gateway", StatusCode: 502}
	p, _ := newTestPortfolio(Holdings{"AAPL": {Shares: 1}, "MSFT": {Shares: 1}}, gw)

	_, err := p.Valuate(context.Background())
	require.Error(t, err)
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, 502, gwErr.StatusCode)
}

func TestValue_ZeroSharesAndCost(t *testing.T) {
	h := value(HoldingRecord{}, Quote{Symbol: "AAPL", Price: 100}, nil, 0)
	assert.Zero(t, h.CostBasis)
	assert.Zero(t, h.GainLossPercent)
	assert.Zero(t, h.Value)
}

func TestTotal(t *testing.T) {
	got := Total([]Holding{
		{Value: 1100, TotalCost: 1000, Day: Change{Value: 100}, MTD: Change{Value: 100}},
		{Value: 900, TotalCost: 1000, Day: Change{Value: -100}, YTD: Change{Value: 400}},
	})
	assert.Equal(t, 2000.0, got.Value)
	assert.Equal(t, 2000.0, got.Cost)
	assert.Zero(t, got.GainLoss)
	assert.Zero(t, got.GainLossPercent)
	assert.Zero(t, got.Day.Percent)
	assert.InDelta(t, 100.0/1900*100, got.MTD.Percent, 1e-9)
	assert.InDelta(t, 400.0/1600*100, got.YTD.Percent, 1e-9)
}
