package marketdesk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchlist_EntriesEmptyMakesNoCall(t *testing.T) {
	gw := newFakeGateway()
	w := NewWatchlist(&memoryWatchlists{}, gw)

	got, err := w.Entries(context.Background(), DefaultWatchlist)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, gw.Calls())

	got, err = w.Entries(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, gw.Calls())
}

func TestWatchlist_EntriesJoinsQuotesChangesAndPE(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["MSFT"] = Quote{Symbol: "MSFT", Price: 420, Exchange: "NASDAQ"}
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 175, Exchange: "NASDAQ"}
	gw.quotes["SAP"] = Quote{Symbol: "SAP", Price: 200, Exchange: "XETRA"}
	gw.quoteErr["BOOM"] = errors.New("connection reset")
	gw.changes["AAPL"] = PriceChangeSet{Symbol: "AAPL", OneDay: ptr(1.5), OneMonth: ptr(-2), YTD: ptr(12.5), ThreeYear: ptr(40)}
	gw.changes["MSFT"] = PriceChangeSet{Symbol: "MSFT", OneDay: ptr(0.5)}
	gw.ratios["AAPL"] = Ratios{Symbol: "AAPL", PE: ptr(28.4)}
	gw.ratios["MSFT"] = Ratios{Symbol: "MSFT"}

	store := &memoryWatchlists{lists: Watchlists{"tech": Symbols("MSFT", "BOOM", "AAPL", "GONE", "SAP")}}
	w := NewWatchlist(store, gw)

	got, err := w.Entries(context.Background(), "tech")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// watchlist order, failed symbols dropped.
	assert.Equal(t, Symbol("MSFT"), got[0].Symbol)
	assert.Equal(t, Symbol("AAPL"), got[1].Symbol)
	assert.Equal(t, Symbol("SAP"), got[2].Symbol)

	msft := got[0]
	assert.True(t, msft.HasChanges)
	assert.Equal(t, 0.5, msft.Change1D)
	assert.Zero(t, msft.Change1M)
	assert.Zero(t, msft.ChangeYTD)
	assert.Nil(t, msft.PE)

	aapl := got[1]
	assert.True(t, aapl.HasChanges)
	assert.Equal(t, 1.5, aapl.Change1D)
	assert.Equal(t, -2.0, aapl.Change1M)
	assert.Equal(t, 12.5, aapl.ChangeYTD)
	assert.Equal(t, 40.0, aapl.Change3Y)
	require.NotNil(t, aapl.PE)
	assert.Equal(t, 28.4, *aapl.PE)

	sap := got[2]
	assert.False(t, sap.HasChanges)
	assert.Equal(t, "€", sap.Currency().Symbol)
}

func TestWatchlist_EntriesIsIdempotent(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 175}
	gw.quotes["MSFT"] = Quote{Symbol: "MSFT", Price: 420}
	gw.changes["AAPL"] = PriceChangeSet{Symbol: "AAPL", YTD: ptr(3)}
	gw.ratios["MSFT"] = Ratios{Symbol: "MSFT", PE: ptr(35)}
	w := NewWatchlist(&memoryWatchlists{lists: Watchlists{DefaultWatchlist: Symbols("AAPL", "MSFT")}}, gw)

	first, err := w.Entries(context.Background(), DefaultWatchlist)
	require.NoError(t, err)
	second, err := w.Entries(context.Background(), DefaultWatchlist)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWatchlist_EntriesDegradeOnPriceChangeFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.quotes["AAPL"] = Quote{Symbol: "AAPL", Price: 175}
	gw.changesErr = &GatewayError{Message: "unavailable", StatusCode: 503}
	w := NewWatchlist(&memoryWatchlists{lists: Watchlists{DefaultWatchlist: Symbols("AAPL")}}, gw)

	got, err := w.Entries(context.Background(), DefaultWatchlist)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].HasChanges)
}

func TestWatchlist_EntriesQuoteFailurePropagates(t *testing.T) {
	gw := newFakeGateway()
	gw.quoteErr["AAPL"] = &RateLimitError{Provider: "fmp"}
	w := NewWatchlist(&memoryWatchlists{lists: Watchlists{DefaultWatchlist: Symbols("AAPL")}}, gw)

	_, err := w.Entries(context.Background(), DefaultWatchlist)
	var limited *RateLimitError
	assert.ErrorAs(t, err, &limited)
}

func TestWatchlist_Mutations(t *testing.T) {
	store := &memoryWatchlists{}
	w := NewWatchlist(store, newFakeGateway())

	added, err := w.Add(DefaultWatchlist, "aapl")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = w.Add(DefaultWatchlist, "AAPL")
	require.NoError(t, err)
	assert.False(t, added, "duplicates are not added")

	_, err = w.Add(DefaultWatchlist, "msft")
	require.NoError(t, err)
	assert.Equal(t, Symbols("AAPL", "MSFT"), w.Symbols(DefaultWatchlist))
	assert.True(t, w.Contains(DefaultWatchlist, "msft"))

	removed, err := w.Remove(DefaultWatchlist, "AAPL")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = w.Remove(DefaultWatchlist, "AAPL")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, w.Create("energy"))
	assert.Equal(t, []string{"default", "energy"}, w.Names())

	deleted, err := w.Delete("energy")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = w.Delete("energy")
	require.NoError(t, err)
	assert.False(t, deleted)

	// add, add, remove, create, delete.
	assert.Equal(t, 5, store.saves)
	assert.Equal(t, Watchlists{DefaultWatchlist: Symbols("MSFT")}, store.lists)
}

func TestWatchlist_FailedSaveKeepsCache(t *testing.T) {
	diskFull := errors.New("disk full")
	store := &memoryWatchlists{lists: Watchlists{DefaultWatchlist: Symbols("MSFT"), "energy": {}}}
	w := NewWatchlist(store, newFakeGateway())
	store.saveErr = diskFull

	added, err := w.Add(DefaultWatchlist, "AAPL")
	assert.ErrorIs(t, err, diskFull)
	assert.False(t, added)
	assert.False(t, w.Contains(DefaultWatchlist, "AAPL"))
	assert.Equal(t, Symbols("MSFT"), w.Symbols(DefaultWatchlist))

	_, err = w.Add("other", "AAPL")
	assert.ErrorIs(t, err, diskFull)
	assert.ErrorIs(t, w.Create("crypto"), diskFull)
	assert.Equal(t, []string{"default", "energy"}, w.Names())

	removed, err := w.Remove(DefaultWatchlist, "MSFT")
	assert.ErrorIs(t, err, diskFull)
	assert.False(t, removed)
	assert.Equal(t, Symbols("MSFT"), w.Symbols(DefaultWatchlist))

	deleted, err := w.Delete("energy")
	assert.ErrorIs(t, err, diskFull)
	assert.False(t, deleted)
	assert.Equal(t, []string{"default", "energy"}, w.Names())

	// the next successful save writes only the committed state.
	store.saveErr = nil
	_, err = w.Add(DefaultWatchlist, "NVDA")
	require.NoError(t, err)
	assert.Equal(t, Watchlists{DefaultWatchlist: Symbols("MSFT", "NVDA"), "energy": {}}, store.lists)
}

func TestWatchlist_AddCreatesMissingList(t *testing.T) {
	store := &memoryWatchlists{}
	w := NewWatchlist(store, newFakeGateway())

	_, err := w.Add("crypto", "coin")
	require.NoError(t, err)
	assert.Equal(t, Symbols("COIN"), store.lists["crypto"])
}

func TestWatchlist_Reload(t *testing.T) {
	store := &memoryWatchlists{lists: Watchlists{DefaultWatchlist: Symbols("AAPL")}}
	w := NewWatchlist(store, newFakeGateway())

	store.lists = Watchlists{DefaultWatchlist: Symbols("NVDA")}
	assert.Equal(t, Symbols("AAPL"), w.Symbols(DefaultWatchlist), "lists are cached")

	w.Reload()
	assert.Equal(t, Symbols("NVDA"), w.Symbols(DefaultWatchlist))
}
