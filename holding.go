package marketdesk

// Change is a performance over a period, as an amount and a percent.
type Change struct {
	Value   float64
	Percent float64
}

// Holding is the live valuation of a held symbol.
type Holding struct {
	Symbol   Symbol
	Name     string
	Exchange string

	Shares    float64
	CostBasis float64 // per share, display only
	Price     float64
	Value     float64 // Shares × Price
	TotalCost float64 // as stored

	GainLoss        float64
	GainLossPercent float64

	Day Change // from the quote's own daily change
	MTD Change // from the first close of the month
	YTD Change // from the provider's ytd percent
}

// Currency returns the display currency of the holding.
func (h Holding) Currency() Currency { return CurrencyOf(h.Exchange) }

// value computes the holding valuation from its record and market data.
//
// changes may be nil. monthStart is the first close of the month, 0 when unknown.
func value(rec HoldingRecord, q Quote, changes *PriceChangeSet, monthStart float64) Holding {
	h := Holding{
		Symbol:    q.Symbol,
		Name:      q.Name,
		Exchange:  q.Exchange,
		Shares:    rec.Shares,
		Price:     q.Price,
		Value:     rec.Shares * q.Price,
		TotalCost: rec.TotalCost,
	}
	if rec.Shares > 0 {
		h.CostBasis = rec.TotalCost / rec.Shares
	}
	h.GainLoss = h.Value - h.TotalCost
	if h.TotalCost > 0 {
		h.GainLossPercent = h.GainLoss / h.TotalCost * 100
	}

	h.Day = Change{Value: rec.Shares * q.Change, Percent: q.ChangePercent}

	if monthStart > 0 {
		h.MTD = Change{
			Value:   rec.Shares * (q.Price - monthStart),
			Percent: (q.Price - monthStart) / monthStart * 100,
		}
	}

	if changes != nil && changes.YTD != nil {
		pct := *changes.YTD
		h.YTD.Percent = pct
		if pct != -100 {
			yearStart := q.Price / (1 + pct/100)
			h.YTD.Value = rec.Shares * (q.Price - yearStart)
		}
	}
	return h
}

// Totals aggregates holdings.
type Totals struct {
	Value           float64
	Cost            float64
	GainLoss        float64
	GainLossPercent float64
	Day             Change
	MTD             Change
	YTD             Change
}

// Total sums holdings. Period percents are relative to the value at the start of the period.
func Total(holdings []Holding) Totals {
	var t Totals
	for _, h := range holdings {
		t.Value += h.Value
		t.Cost += h.TotalCost
		t.Day.Value += h.Day.Value
		t.MTD.Value += h.MTD.Value
		t.YTD.Value += h.YTD.Value
	}
	t.GainLoss = t.Value - t.Cost
	if t.Cost > 0 {
		t.GainLossPercent = t.GainLoss / t.Cost * 100
	}
	for _, c := range []*Change{&t.Day, &t.MTD, &t.YTD} {
		if start := t.Value - c.Value; start > 0 {
			c.Percent = c.Value / start * 100
		}
	}
	return t
}
