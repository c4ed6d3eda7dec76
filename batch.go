package marketdesk

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchAll calls fetch for every symbol concurrently and returns the successes.
//
// All requests are in flight before any result is read, without a concurrency cap, and
// a failure never cancels the other fetches. The result order is unspecified: callers
// re-key by symbol.
// Failed symbols are dropped. A *BatchError is returned only when nothing succeeded
// and at least one failure was something else than a SymbolNotFoundError.
// An empty input returns immediately without calling fetch.
func FetchAll[T any](ctx context.Context, symbols []Symbol, fetch func(context.Context, Symbol) (T, error)) ([]T, error) {
	if len(symbols) == 0 {
		return []T{}, nil
	}

	type result struct {
		value T
		err   error
	}
	results := make([]result, len(symbols))
	var g errgroup.Group
	for i, s := range symbols {
		g.Go(func() error {
			results[i].value, results[i].err = fetch(ctx, s)
			return nil
		})
	}
	_ = g.Wait()

	values := make([]T, 0, len(symbols))
	var errs []error
	systemic := false
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			if !IsNotFound(r.err) {
				systemic = true
			}
			continue
		}
		values = append(values, r.value)
	}
	if len(values) == 0 && systemic {
		return nil, &BatchError{Errs: errs}
	}
	return values, nil
}
