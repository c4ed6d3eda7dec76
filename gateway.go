package marketdesk

import (
	"context"

	"github.com/etnz/marketdesk/date"
)

// Gateway is the market data provider used by the watchlist and portfolio views.
//
// Quote and Ratios return a *SymbolNotFoundError for unknown symbols. Every method
// may return a *RateLimitError or a *GatewayError.
type Gateway interface {
	Quote(ctx context.Context, symbol Symbol) (Quote, error)
	// PriceChanges returns the price change sets it could find, in any order.
	PriceChanges(ctx context.Context, symbols []Symbol) ([]PriceChangeSet, error)
	// History returns daily bars between from and to, both included, in any order.
	History(ctx context.Context, symbol Symbol, from, to date.Date) ([]HistoricalPrice, error)
	Ratios(ctx context.Context, symbol Symbol) (Ratios, error)
}

// Quotes fetches quotes for all symbols concurrently, dropping the failed ones.
func Quotes(ctx context.Context, g Gateway, symbols []Symbol) ([]Quote, error) {
	return FetchAll(ctx, symbols, g.Quote)
}
