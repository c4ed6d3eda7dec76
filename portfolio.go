package marketdesk

import (
	"context"
	"fmt"

	"github.com/etnz/marketdesk/date"
	"golang.org/x/sync/errgroup"
)

// Portfolio manages holdings and values them against live market data.
//
// Every mutation loads the store, applies the change and saves it back.
type Portfolio struct {
	store   HoldingSource
	gateway Gateway
	today   func() date.Date
}

// NewPortfolio returns a Portfolio persisted in store and priced by gateway.
func NewPortfolio(store HoldingSource, gateway Gateway) *Portfolio {
	return &Portfolio{store: store, gateway: gateway, today: date.Today}
}

// Holdings returns the stored holdings.
func (p *Portfolio) Holdings() Holdings { return p.store.Load() }

// Add buys shares for a total cost.
//
// cost is the absolute amount paid for all the shares, not a per-share price.
// An existing holding gets both its shares and its total cost increased.
func (p *Portfolio) Add(symbol Symbol, shares, cost float64) error {
	symbol = NewSymbol(string(symbol))
	if shares < 0 {
		return fmt.Errorf("invalid shares %v: must not be negative", shares)
	}
	if cost < 0 {
		return fmt.Errorf("invalid total cost %v: must not be negative", cost)
	}
	holdings := p.store.Load()
	rec := holdings[symbol]
	rec.Shares += shares
	rec.TotalCost += cost
	holdings[symbol] = rec
	return p.store.Save(holdings)
}

// Remove deletes a holding. It returns a *HoldingNotFoundError if symbol is not held.
func (p *Portfolio) Remove(symbol Symbol) error {
	symbol = NewSymbol(string(symbol))
	holdings := p.store.Load()
	if _, exists := holdings[symbol]; !exists {
		return &HoldingNotFoundError{Symbol: symbol}
	}
	delete(holdings, symbol)
	return p.store.Save(holdings)
}

// UpdateShares overwrites the share count of a holding and keeps its total cost.
// It returns a *HoldingNotFoundError if symbol is not held.
func (p *Portfolio) UpdateShares(symbol Symbol, shares float64) error {
	symbol = NewSymbol(string(symbol))
	if shares < 0 {
		return fmt.Errorf("invalid shares %v: must not be negative", shares)
	}
	holdings := p.store.Load()
	rec, exists := holdings[symbol]
	if !exists {
		return &HoldingNotFoundError{Symbol: symbol}
	}
	rec.Shares = shares
	holdings[symbol] = rec
	return p.store.Save(holdings)
}

// Valuate values every holding with a live quote.
//
// Holdings without a quote are skipped. A missing ytd figure or month history only
// zeroes that period for that symbol. The error is only set when the quotes could not be
// fetched at all. The order of the result is unspecified.
func (p *Portfolio) Valuate(ctx context.Context) ([]Holding, error) {
	holdings := p.store.Load()
	if len(holdings) == 0 {
		return []Holding{}, nil
	}
	symbols := holdings.Symbols()
	today := p.today()

	var (
		quotes  []Quote
		changes []PriceChangeSet
		starts  map[Symbol]float64
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		quotes, err = Quotes(ctx, p.gateway, symbols)
		return err
	})
	g.Go(func() error {
		// a failure only zeroes the ytd figures.
		changes, _ = p.gateway.PriceChanges(ctx, symbols)
		return nil
	})
	g.Go(func() error {
		starts = p.monthStarts(ctx, symbols, today)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cannot fetch portfolio quotes: %w", err)
	}

	changeMap := make(map[Symbol]*PriceChangeSet, len(changes))
	for i := range changes {
		changeMap[changes[i].Symbol] = &changes[i]
	}

	quoteMap := QuoteMap(quotes)
	result := make([]Holding, 0, len(quotes))
	for symbol, rec := range holdings {
		q, ok := quoteMap[symbol]
		if !ok {
			continue
		}
		result = append(result, value(rec, q, changeMap[symbol], starts[symbol]))
	}
	return result, nil
}

// monthStarts returns the first close on or after the first day of today's month, per
// symbol. Symbols without history are absent.
func (p *Portfolio) monthStarts(ctx context.Context, symbols []Symbol, today date.Date) map[Symbol]float64 {
	type start struct {
		symbol Symbol
		price  float64
	}
	month := date.ToDate(today, date.Monthly)
	found, _ := FetchAll(ctx, symbols, func(ctx context.Context, s Symbol) (start, error) {
		rows, err := p.gateway.History(ctx, s, month.From, month.To)
		if err != nil {
			return start{}, err
		}
		_, price, ok := Closes(rows).FirstOnOrAfter(month.From)
		if !ok {
			return start{}, &SymbolNotFoundError{Symbol: s}
		}
		return start{s, price}, nil
	})
	starts := make(map[Symbol]float64, len(found))
	for _, f := range found {
		starts[f.symbol] = f.price
	}
	return starts
}
