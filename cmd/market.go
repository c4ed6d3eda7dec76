package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marketdesk/eodhd"
	"github.com/etnz/marketdesk/kalshi"
	"github.com/etnz/marketdesk/renderer"
	"github.com/google/subcommands"
)

type indicesCmd struct{}

func (*indicesCmd) Name() string     { return "indices" }
func (*indicesCmd) Synopsis() string { return "display world indices by region" }
func (*indicesCmd) Usage() string {
	return `desk indices
`
}
func (*indicesCmd) SetFlags(f *flag.FlagSet) {}

func (*indicesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := openFMP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()
	quotes, err := client.WorldIndices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching indices: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IndicesMarkdown(quotes))
	return subcommands.ExitSuccess
}

type moversCmd struct {
	limit int
}

func (*moversCmd) Name() string     { return "movers" }
func (*moversCmd) Synopsis() string { return "display the biggest gainers of the day" }
func (*moversCmd) Usage() string {
	return `desk movers [-n <count>]
`
}

func (c *moversCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Number of movers.")
}

func (c *moversCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := openFMP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()
	quotes, err := client.Gainers(ctx, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching movers: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MoversMarkdown(quotes))
	return subcommands.ExitSuccess
}

type forexCmd struct{}

func (*forexCmd) Name() string     { return "forex" }
func (*forexCmd) Synopsis() string { return "display currencies through their ETFs" }
func (*forexCmd) Usage() string {
	return `desk forex
`
}
func (*forexCmd) SetFlags(f *flag.FlagSet) {}

func (*forexCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := openFMP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()
	quotes, err := client.Forex(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching currencies: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ForexMarkdown(quotes))
	return subcommands.ExitSuccess
}

type treasuryCmd struct{}

func (*treasuryCmd) Name() string     { return "treasury" }
func (*treasuryCmd) Synopsis() string { return "display the US treasury yield curve" }
func (*treasuryCmd) Usage() string {
	return `desk treasury
`
}
func (*treasuryCmd) SetFlags(f *flag.FlagSet) {}

func (*treasuryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := openFMP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()
	curve, err := client.Treasury(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching treasury rates: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TreasuryMarkdown(curve))
	return subcommands.ExitSuccess
}

type bondsCmd struct{}

func (*bondsCmd) Name() string     { return "bonds" }
func (*bondsCmd) Synopsis() string { return "display international government bond yields" }
func (*bondsCmd) Usage() string {
	codes := make([]string, len(eodhd.Countries))
	for i, c := range eodhd.Countries {
		codes[i] = c.Code
	}
	return fmt.Sprintf(`desk bonds [<country>]

  Without country, displays the 1M, 5Y and 10Y yields of every country.
  Countries: %s.
`, strings.Join(codes, " "))
}
func (*bondsCmd) SetFlags(f *flag.FlagSet) {}

func (*bondsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected at most one country code")
		return subcommands.ExitUsageError
	}
	var country eodhd.Country
	if f.NArg() == 1 {
		var ok bool
		if country, ok = eodhd.CountryOf(f.Arg(0)); !ok {
			fmt.Fprintf(os.Stderr, "Error: unsupported country %q\n", f.Arg(0))
			return subcommands.ExitUsageError
		}
	}
	client, err := openEODHD()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()

	if country.Code == "" {
		snapshots, err := client.Snapshot(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching bond yields: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.BondSnapshotMarkdown(snapshots))
		return subcommands.ExitSuccess
	}
	bonds, err := client.CountryYields(ctx, country.Code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s bond yields: %v\n", country.Name, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BondsMarkdown(country, bonds))
	return subcommands.ExitSuccess
}

type economyCmd struct{}

func (*economyCmd) Name() string     { return "economy" }
func (*economyCmd) Synopsis() string { return "display key economic indicators" }
func (*economyCmd) Usage() string {
	return `desk economy

  Displays the latest GDP, unemployment, CPI, fed funds rate and 10Y treasury
  observations.
`
}
func (*economyCmd) SetFlags(f *flag.FlagSet) {}

func (*economyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := openFRED()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()
	printMarkdown(renderer.EconomyMarkdown(client.Latest(ctx)))
	return subcommands.ExitSuccess
}

type predictCmd struct {
	series string
	events bool
	limit  int
}

func (*predictCmd) Name() string     { return "predict" }
func (*predictCmd) Synopsis() string { return "display economic prediction markets" }
func (*predictCmd) Usage() string {
	return `desk predict [-series <ticker> | -events] [-n <count>]
desk predict <market ticker>

  Without flags, displays the featured economic markets by category.
  -events lists the markets of the latest events instead.
`
}

func (c *predictCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.series, "series", "", "Series ticker, like KXFED.")
	f.BoolVar(&c.events, "events", false, "List the markets of the latest events.")
	f.IntVar(&c.limit, "n", 20, "Maximum number of markets.")
}

func (c *predictCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := openKalshi()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()

	switch {
	case f.NArg() == 1:
		m, err := client.Market(ctx, strings.ToUpper(f.Arg(0)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching market %s: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.MarketsMarkdown(m.Ticker, []kalshi.Market{m}))
		return subcommands.ExitSuccess
	case c.events:
		markets, err := client.Markets(ctx, c.limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching event markets: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.MarketsMarkdown("Latest Events", markets))
		return subcommands.ExitSuccess
	case c.series == "":
		categories, err := client.Grouped(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching prediction markets: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.PredictionsMarkdown(categories))
		return subcommands.ExitSuccess
	}

	series := strings.ToUpper(c.series)
	markets, err := client.SeriesMarkets(ctx, series)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching markets of %s: %v\n", series, err)
		return subcommands.ExitFailure
	}
	if c.limit > 0 && len(markets) > c.limit {
		markets = markets[:c.limit]
	}
	printMarkdown(renderer.MarketsMarkdown(series, markets))
	return subcommands.ExitSuccess
}
