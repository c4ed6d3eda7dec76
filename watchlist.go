package marketdesk

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Entry is a watchlist line: the live quote joined with price changes and P/E.
type Entry struct {
	Quote
	// PE is the trailing P/E from the ratios endpoint, nil when unavailable.
	PE *float64
	// HasChanges is false when no price change set was found for the symbol.
	// Missing horizons of a found set are 0.
	HasChanges bool
	Change1D   float64
	Change1M   float64
	ChangeYTD  float64
	Change3Y   float64
}

// Watchlist manages named symbol lists and joins them with market data.
//
// Lists are cached in memory after the first load; Reload refreshes them from the store.
type Watchlist struct {
	store   WatchlistSource
	gateway Gateway

	lists  Watchlists
	loaded bool
}

// NewWatchlist returns a Watchlist loaded from store.
func NewWatchlist(store WatchlistSource, gateway Gateway) *Watchlist {
	w := &Watchlist{store: store, gateway: gateway}
	w.Reload()
	return w
}

// Reload reads the lists from the store again.
func (w *Watchlist) Reload() {
	w.lists = w.store.Load()
	w.loaded = true
}

func (w *Watchlist) ensureLoaded() {
	if !w.loaded {
		w.Reload()
	}
}

// Names returns the watchlist names, sorted.
func (w *Watchlist) Names() []string {
	w.ensureLoaded()
	return slices.Sorted(maps.Keys(w.lists))
}

// Symbols returns a copy of the symbols of a watchlist, in insertion order.
func (w *Watchlist) Symbols(name string) []Symbol {
	w.ensureLoaded()
	return slices.Clone(w.lists[name])
}

// Contains reports whether symbol is in the named watchlist.
func (w *Watchlist) Contains(name string, symbol Symbol) bool {
	w.ensureLoaded()
	return slices.Contains(w.lists[name], NewSymbol(string(symbol)))
}

// Create adds an empty watchlist. Creating an existing list is a no-op.
func (w *Watchlist) Create(name string) error {
	w.ensureLoaded()
	if name == "" {
		return fmt.Errorf("watchlist name cannot be empty")
	}
	if _, exists := w.lists[name]; exists {
		return nil
	}
	lists := maps.Clone(w.lists)
	lists[name] = []Symbol{}
	return w.commit(lists)
}

// Delete removes a watchlist and reports whether it existed.
func (w *Watchlist) Delete(name string) (bool, error) {
	w.ensureLoaded()
	if _, exists := w.lists[name]; !exists {
		return false, nil
	}
	lists := maps.Clone(w.lists)
	delete(lists, name)
	if err := w.commit(lists); err != nil {
		return false, err
	}
	return true, nil
}

// Add appends symbol to the named watchlist, creating it if needed, and reports
// whether it was added. Symbols already in the list are not added again.
func (w *Watchlist) Add(name string, symbol Symbol) (bool, error) {
	w.ensureLoaded()
	symbol = NewSymbol(string(symbol))
	if symbol == "" {
		return false, fmt.Errorf("symbol cannot be empty")
	}
	if slices.Contains(w.lists[name], symbol) {
		return false, nil
	}
	lists := maps.Clone(w.lists)
	lists[name] = append(slices.Clone(w.lists[name]), symbol)
	if err := w.commit(lists); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes symbol from the named watchlist and reports whether it was there.
func (w *Watchlist) Remove(name string, symbol Symbol) (bool, error) {
	w.ensureLoaded()
	symbol = NewSymbol(string(symbol))
	i := slices.Index(w.lists[name], symbol)
	if i < 0 {
		return false, nil
	}
	lists := maps.Clone(w.lists)
	lists[name] = slices.Delete(slices.Clone(w.lists[name]), i, i+1)
	if err := w.commit(lists); err != nil {
		return false, err
	}
	return true, nil
}

// commit saves lists and makes them the cached lists. The cache is unchanged when
// the save fails.
func (w *Watchlist) commit(lists Watchlists) error {
	if err := w.store.Save(lists); err != nil {
		return fmt.Errorf("cannot save watchlists: %w", err)
	}
	w.lists = lists
	return nil
}

// Entries joins the named watchlist with live quotes, price changes and P/E ratios.
//
// Entries follow the watchlist order. Symbols without a quote are dropped, so the
// result can be shorter than the list. The error is only set when the quotes could
// not be fetched at all.
func (w *Watchlist) Entries(ctx context.Context, name string) ([]Entry, error) {
	symbols := w.Symbols(name)
	if len(symbols) == 0 {
		return []Entry{}, nil
	}

	type pe struct {
		symbol Symbol
		value  float64
	}
	var (
		quotes  []Quote
		changes []PriceChangeSet
		pes     []pe
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		quotes, err = Quotes(ctx, w.gateway, symbols)
		return err
	})
	g.Go(func() error {
		// a failure leaves every entry without changes.
		changes, _ = w.gateway.PriceChanges(ctx, symbols)
		return nil
	})
	g.Go(func() error {
		pes, _ = FetchAll(ctx, symbols, func(ctx context.Context, s Symbol) (pe, error) {
			r, err := w.gateway.Ratios(ctx, s)
			if err != nil {
				return pe{}, err
			}
			if r.PE == nil {
				return pe{}, &SymbolNotFoundError{Symbol: s}
			}
			return pe{s, *r.PE}, nil
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cannot fetch watchlist %q quotes: %w", name, err)
	}

	quoteMap := QuoteMap(quotes)
	changeMap := make(map[Symbol]PriceChangeSet, len(changes))
	for _, c := range changes {
		changeMap[c.Symbol] = c
	}
	peMap := make(map[Symbol]float64, len(pes))
	for _, p := range pes {
		peMap[p.symbol] = p.value
	}

	entries := make([]Entry, 0, len(quotes))
	for _, s := range symbols {
		q, ok := quoteMap[s]
		if !ok {
			continue
		}
		e := Entry{Quote: q}
		if v, ok := peMap[s]; ok {
			e.PE = &v
		}
		if c, ok := changeMap[s]; ok {
			e.HasChanges = true
			e.Change1D = orZero(c.OneDay)
			e.Change1M = orZero(c.OneMonth)
			e.ChangeYTD = orZero(c.YTD)
			e.Change3Y = orZero(c.ThreeYear)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
