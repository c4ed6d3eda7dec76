package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/renderer"
	"github.com/google/subcommands"
)

// watchActions are the watch command verbs.
var watchActions = []string{"list", "show", "add", "remove", "create", "delete"}

type watchCmd struct {
	list   string
	follow bool
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "manage and display watchlists" }
func (*watchCmd) Usage() string {
	return `desk watch list
desk watch [-l <list>] [-follow] show
desk watch [-l <list>] add <symbol>...
desk watch [-l <list>] remove <symbol>...
desk watch create <list>
desk watch delete <list>

  Watchlists are named lists of symbols. show displays the quotes, performance
  and P/E of every symbol of a list.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.list, "l", marketdesk.DefaultWatchlist, "Watchlist name.")
	f.BoolVar(&c.follow, "follow", false, "Refresh the watchlist periodically (show only).")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing action, one of", watchActions)
		return subcommands.ExitUsageError
	}
	action, args := f.Arg(0), f.Args()[1:]

	store, _, err := stores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch action {
	case "list":
		printMarkdown(renderer.WatchlistsMarkdown(marketdesk.NewWatchlist(store, nil)))
		return subcommands.ExitSuccess

	case "show":
		client, err := openFMP()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer client.Close()
		w := marketdesk.NewWatchlist(store, client)
		v := func(ctx context.Context) (string, error) {
			w.Reload()
			entries, err := w.Entries(ctx, c.list)
			if err != nil {
				return "", err
			}
			return renderer.WatchlistMarkdown(c.list, entries), nil
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

	case "add", "remove":
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: missing symbols")
			return subcommands.ExitUsageError
		}
		w := marketdesk.NewWatchlist(store, nil)
		for _, arg := range args {
			symbol := marketdesk.NewSymbol(arg)
			var changed bool
			if action == "add" {
				changed, err = w.Add(c.list, symbol)
			} else {
				changed, err = w.Remove(c.list, symbol)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error saving watchlist %q: %v\n", c.list, err)
				return subcommands.ExitFailure
			}
			switch {
			case changed && action == "add":
				fmt.Printf("Added %s to %s\n", symbol, c.list)
			case changed:
				fmt.Printf("Removed %s from %s\n", symbol, c.list)
			case action == "add":
				fmt.Printf("%s is already in %s\n", symbol, c.list)
			default:
				fmt.Printf("%s is not in %s\n", symbol, c.list)
			}
		}
		return subcommands.ExitSuccess

	case "create", "delete":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Error: expected one watchlist name")
			return subcommands.ExitUsageError
		}
		w := marketdesk.NewWatchlist(store, nil)
		if action == "create" {
			if err := w.Create(args[0]); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating watchlist %q: %v\n", args[0], err)
				return subcommands.ExitFailure
			}
			fmt.Printf("Created watchlist %s\n", args[0])
			return subcommands.ExitSuccess
		}
		deleted, err := w.Delete(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting watchlist %q: %v\n", args[0], err)
			return subcommands.ExitFailure
		}
		if !deleted {
			fmt.Fprintf(os.Stderr, "Watchlist %q does not exist\n", args[0])
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted watchlist %s\n", args[0])
		return subcommands.ExitSuccess

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown action %q, expected one of %v\n", action, watchActions)
		return subcommands.ExitUsageError
	}
}
