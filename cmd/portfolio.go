package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/renderer"
	"github.com/google/subcommands"
)

// portfolioActions are the portfolio command verbs.
var portfolioActions = []string{"show", "add", "remove", "update"}

type portfolioCmd struct {
	follow bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "manage and value the portfolio" }
func (*portfolioCmd) Usage() string {
	return `desk portfolio [-follow] show
desk portfolio add <symbol> <shares> <total_cost>
desk portfolio remove <symbol>
desk portfolio update <symbol> <shares>

  add is cumulative: shares and total cost are added to an existing holding.
  update replaces the shares and keeps the total cost.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.follow, "follow", false, "Refresh the valuation periodically (show only).")
}

// floatArgs parses the numeric arguments.
func floatArgs(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		values[i] = v
	}
	return values, nil
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing action, one of", portfolioActions)
		return subcommands.ExitUsageError
	}
	action, args := f.Arg(0), f.Args()[1:]

	_, store, err := stores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	want := map[string]int{"show": 0, "add": 3, "remove": 1, "update": 2}
	n, ok := want[action]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown action %q, expected one of %v\n", action, portfolioActions)
		return subcommands.ExitUsageError
	}
	if len(args) != n {
		fmt.Fprintf(os.Stderr, "Error: %s expects %d arguments\n", action, n)
		return subcommands.ExitUsageError
	}

	if action == "show" {
		client, err := openFMP()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer client.Close()
		p := marketdesk.NewPortfolio(store, client)
		v := func(ctx context.Context) (string, error) {
			holdings, err := p.Valuate(ctx)
			if err != nil {
				return "", err
			}
			return renderer.PortfolioMarkdown(holdings), nil
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

	symbol := marketdesk.NewSymbol(args[0])
	numbers, err := floatArgs(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p := marketdesk.NewPortfolio(store, nil)
	switch action {
	case "add":
		err = p.Add(symbol, numbers[0], numbers[1])
	case "remove":
		err = p.Remove(symbol)
	case "update":
		err = p.UpdateShares(symbol, numbers[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot %s %s: %v\n", action, symbol, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Portfolio updated: %s %s\n", action, symbol)
	return subcommands.ExitSuccess
}
