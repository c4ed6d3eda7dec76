package marketdesk

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// NewsSource provides news articles about a symbol.
type NewsSource interface {
	News(ctx context.Context, symbol Symbol, limit int) ([]NewsArticle, error)
}

// DetailNews is the number of articles of a QuoteDetail.
const DetailNews = 3

// QuoteDetail is a quote with its price changes and latest news.
type QuoteDetail struct {
	Quote
	Changes *PriceChangeSet // nil when unavailable
	News    []NewsArticle
}

// Detail fetches the quote, price changes and news of symbol concurrently.
//
// Only a quote failure is an error, missing changes or news are left empty.
func Detail(ctx context.Context, g Gateway, news NewsSource, symbol Symbol) (QuoteDetail, error) {
	var d QuoteDetail
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		q, err := g.Quote(ctx, symbol)
		if err != nil {
			return fmt.Errorf("cannot fetch quote for %s: %w", symbol, err)
		}
		d.Quote = q
		return nil
	})
	eg.Go(func() error {
		changes, err := g.PriceChanges(ctx, []Symbol{symbol})
		if err == nil && len(changes) > 0 {
			d.Changes = &changes[0]
		}
		return nil
	})
	eg.Go(func() error {
		articles, err := news.News(ctx, symbol, DetailNews)
		if err == nil {
			d.News = articles
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return QuoteDetail{}, err
	}
	if len(d.News) > DetailNews {
		d.News = d.News[:DetailNews]
	}
	return d, nil
}
