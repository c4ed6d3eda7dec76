package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/date"
	"github.com/etnz/marketdesk/renderer"
	"github.com/google/subcommands"
)

type quoteCmd struct {
	follow bool
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display a real-time quote with performance and news" }
func (*quoteCmd) Usage() string {
	return `desk quote [-follow] <symbol>

  Displays the quote of a symbol, its price changes over standard horizons
  and the latest news.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.follow, "follow", false, "Refresh the quote periodically.")
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	client, err := openFMP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()

	v := func(ctx context.Context) (string, error) {
		d, err := marketdesk.Detail(ctx, client, client, symbol)
		if err != nil {
			return "", err
		}
		return renderer.QuoteMarkdown(d, time.Now()), nil
	}
	if c.follow {
		err = follow(ctx, Logger(), refreshInterval(), v)
	} else {
		err = show(ctx, v)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type historyCmd struct {
	period string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display daily prices and statistics over a period" }
func (*historyCmd) Usage() string {
	return `desk history [-p <period>] <symbol>

  Displays the daily prices of a symbol over a period, with its return,
  price range, average volume and annualized volatility.
  Periods: 1D 1W 1M 3M 6M 1Y 5Y.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "1M", "Period of the history.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	if _, err := marketdesk.PeriodRange(c.period, date.Today()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	client, err := openFMP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()

	prices, err := marketdesk.HistoryFor(ctx, client, symbol, c.period, date.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching history for %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}
	cur := marketdesk.USD
	if q, err := client.Quote(ctx, symbol); err == nil {
		cur = q.Currency()
	}
	printMarkdown(renderer.HistoryMarkdown(symbol, c.period, prices, cur))
	return subcommands.ExitSuccess
}

type newsCmd struct {
	limit int
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "display the latest news of a symbol or of the market" }
func (*newsCmd) Usage() string {
	return `desk news [-n <count>] [<symbol>]

  Displays the latest news about a symbol, or general market news without symbol.
`
}

func (c *newsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Number of articles.")
}

func (c *newsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var symbol marketdesk.Symbol
	switch f.NArg() {
	case 0:
	case 1:
		symbol = marketdesk.NewSymbol(f.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "Error: expected at most one symbol")
		return subcommands.ExitUsageError
	}
	client, err := openFMP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()

	articles, err := client.News(ctx, symbol, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching news: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.NewsMarkdown(symbol, articles, time.Now()))
	return subcommands.ExitSuccess
}

type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search symbols by company name or ticker" }
func (*searchCmd) Usage() string {
	return `desk search [-n <count>] <query>
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Maximum number of results.")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected one query argument")
		return subcommands.ExitUsageError
	}
	client, err := openFMP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()

	results, err := client.Search(ctx, f.Arg(0), c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SearchMarkdown(f.Arg(0), results))
	return subcommands.ExitSuccess
}
