package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/eodhd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the registered commands.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	c.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = flagPredictor(f)
	})
	if _, ok := root.Flags["cache"]; ok {
		root.Flags["cache"] = predict.Set{"daily", "weekly", "monthly"}
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}, Args: argsPredictor(cmd.Name())}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f)
		})
		switch cmd.Name() {
		case "statement":
			sub.Flags["k"] = predict.Set{"income", "balance", "cashflow"}
		case "history":
			sub.Flags["p"] = predict.Set(marketdesk.HistoryPeriods)
		case "watch":
			sub.Flags["l"] = complete.PredictFunc(watchlistNames)
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// flagPredictor completes boolean flags with nothing, and others with anything.
func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

func argsPredictor(name string) complete.Predictor {
	switch name {
	case "quote", "history", "profile", "ratios", "statement", "news":
		return complete.PredictFunc(knownSymbols)
	case "watch":
		return predict.Set(watchActions)
	case "portfolio":
		return predict.Set(portfolioActions)
	case "bonds":
		codes := make(predict.Set, len(eodhd.Countries))
		for i, c := range eodhd.Countries {
			codes[i] = c.Code
		}
		return codes
	default:
		return predict.Nothing
	}
}

// knownSymbols completes with the symbols of the watchlists and of the portfolio.
func knownSymbols(prefix string) []string {
	wstore, pstore, err := stores()
	if err != nil {
		return nil
	}
	var symbols []marketdesk.Symbol
	for _, l := range wstore.Load() {
		symbols = append(symbols, l...)
	}
	symbols = append(symbols, pstore.Load().Symbols()...)
	var out []string
	for _, s := range marketdesk.Unique(symbols) {
		if strings.HasPrefix(s.String(), strings.ToUpper(prefix)) {
			out = append(out, s.String())
		}
	}
	return out
}

func watchlistNames(prefix string) []string {
	wstore, _, err := stores()
	if err != nil {
		return nil
	}
	var out []string
	for _, name := range marketdesk.NewWatchlist(wstore, nil).Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
