package marketdesk

import (
	"context"
	"sync"

	"github.com/etnz/marketdesk/date"
)

func ptr(v float64) *float64 { return &v }

// fakeGateway is an in-memory Gateway that counts its calls.
type fakeGateway struct {
	mu    sync.Mutex
	calls int

	quotes     map[Symbol]Quote
	quoteErr   map[Symbol]error
	changes    map[Symbol]PriceChangeSet
	changesErr error
	history    map[Symbol][]HistoricalPrice
	historyErr map[Symbol]error
	ratios     map[Symbol]Ratios
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		quotes:     map[Symbol]Quote{},
		quoteErr:   map[Symbol]error{},
		changes:    map[Symbol]PriceChangeSet{},
		history:    map[Symbol][]HistoricalPrice{},
		historyErr: map[Symbol]error{},
		ratios:     map[Symbol]Ratios{},
	}
}

func (f *fakeGateway) count() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

func (f *fakeGateway) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeGateway) Quote(ctx context.Context, symbol Symbol) (Quote, error) {
	f.count()
	if err, ok := f.quoteErr[symbol]; ok {
		return Quote{}, err
	}
	q, ok := f.quotes[symbol]
	if !ok {
		return Quote{}, &SymbolNotFoundError{Symbol: symbol}
	}
	return q, nil
}

func (f *fakeGateway) PriceChanges(ctx context.Context, symbols []Symbol) ([]PriceChangeSet, error) {
	f.count()
	if f.changesErr != nil {
		return nil, f.changesErr
	}
	var out []PriceChangeSet
	for _, s := range symbols {
		if c, ok := f.changes[s]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeGateway) History(ctx context.Context, symbol Symbol, from, to date.Date) ([]HistoricalPrice, error) {
	f.count()
	if err, ok := f.historyErr[symbol]; ok {
		return nil, err
	}
	var out []HistoricalPrice
	r := date.Range{From: from, To: to}
	for _, p := range f.history[symbol] {
		if r.Contains(p.Date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGateway) Ratios(ctx context.Context, symbol Symbol) (Ratios, error) {
	f.count()
	r, ok := f.ratios[symbol]
	if !ok {
		return Ratios{}, &SymbolNotFoundError{Symbol: symbol}
	}
	return r, nil
}

// memoryHoldings is an in-memory HoldingSource counting saves.
type memoryHoldings struct {
	holdings Holdings
	saves    int
}

func (m *memoryHoldings) Load() Holdings {
	out := Holdings{}
	for k, v := range m.holdings {
		out[k] = v
	}
	return out
}

func (m *memoryHoldings) Save(h Holdings) error {
	m.saves++
	m.holdings = h
	return nil
}

// memoryWatchlists is an in-memory WatchlistSource counting saves. Saves fail with
// saveErr when set.
type memoryWatchlists struct {
	lists   Watchlists
	saves   int
	saveErr error
}

func (m *memoryWatchlists) Load() Watchlists {
	if m.lists == nil {
		return Watchlists{DefaultWatchlist: {}}
	}
	out := Watchlists{}
	for k, v := range m.lists {
		out[k] = append([]Symbol{}, v...)
	}
	return out
}

func (m *memoryWatchlists) Save(w Watchlists) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lists = w
	return nil
}
