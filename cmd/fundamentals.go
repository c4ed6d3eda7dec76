package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/renderer"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type profileCmd struct{}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "display a company profile" }
func (*profileCmd) Usage() string {
	return `desk profile <symbol>
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {}

func (c *profileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	p, err := client.Profile(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching profile of %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProfileMarkdown(p))
	return subcommands.ExitSuccess
}

type ratiosCmd struct{}

func (*ratiosCmd) Name() string     { return "ratios" }
func (*ratiosCmd) Synopsis() string { return "display trailing twelve month ratios and key metrics" }
func (*ratiosCmd) Usage() string {
	return `desk ratios <symbol>
`
}

func (c *ratiosCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratiosCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var (
		ratios  marketdesk.Ratios
		metrics marketdesk.KeyMetrics
		cur     = marketdesk.USD
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ratios, err = client.Ratios(gctx, symbol)
		return err
	})
	g.Go(func() error {
		// metrics are optional.
		metrics, _ = client.KeyMetrics(gctx, symbol)
		return nil
	})
	g.Go(func() error {
		if p, err := client.Profile(gctx, symbol); err == nil {
			cur = marketdesk.CurrencyOf(p.Exchange)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching ratios of %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RatiosMarkdown(symbol, ratios, metrics, cur))
	return subcommands.ExitSuccess
}

type statementCmd struct {
	kind      string
	quarterly bool
	limit     int
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "display financial statements" }
func (*statementCmd) Usage() string {
	return `desk statement [-k income|balance|cashflow] [-q] [-n <count>] <symbol>

  Displays the latest income statements, balance sheets or cash flow statements,
  annual by default.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "income", "Statement kind: income, balance or cashflow.")
	f.BoolVar(&c.quarterly, "q", false, "Quarterly statements instead of annual ones.")
	f.IntVar(&c.limit, "n", 4, "Number of periods.")
}

func (c *statementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	kind, err := marketdesk.ParseStatementKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	period := marketdesk.Annual
	if c.quarterly {
		period = marketdesk.Quarterly
	}
	client, err := openFMP()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer client.Close()

	cur := marketdesk.USD
	if p, err := client.Profile(ctx, symbol); err == nil {
		cur = marketdesk.CurrencyOf(p.Exchange)
	}

	var md string
	switch kind {
	case marketdesk.Income:
		var s []marketdesk.IncomeStatement
		if s, err = client.IncomeStatements(ctx, symbol, period, c.limit); err == nil {
			md = renderer.IncomeMarkdown(symbol, s, cur)
		}
	case marketdesk.Balance:
		var s []marketdesk.BalanceSheet
		if s, err = client.BalanceSheets(ctx, symbol, period, c.limit); err == nil {
			md = renderer.BalanceMarkdown(symbol, s, cur)
		}
	case marketdesk.CashFlow:
		var s []marketdesk.CashFlowStatement
		if s, err = client.CashFlows(ctx, symbol, period, c.limit); err == nil {
			md = renderer.CashFlowMarkdown(symbol, s, cur)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %s statements of %s: %v\n", kind, symbol, err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
