// Package cmd implements the desk command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/marketdesk"
	"github.com/etnz/marketdesk/date"
	"github.com/etnz/marketdesk/eodhd"
	"github.com/etnz/marketdesk/fmp"
	"github.com/etnz/marketdesk/fred"
	"github.com/etnz/marketdesk/kalshi"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&quoteCmd{}, "quotes")
	c.Register(&historyCmd{}, "quotes")
	c.Register(&newsCmd{}, "quotes")
	c.Register(&searchCmd{}, "quotes")

	c.Register(&profileCmd{}, "fundamentals")
	c.Register(&ratiosCmd{}, "fundamentals")
	c.Register(&statementCmd{}, "fundamentals")

	c.Register(&watchCmd{}, "tracking")
	c.Register(&portfolioCmd{}, "tracking")

	c.Register(&indicesCmd{}, "market")
	c.Register(&moversCmd{}, "market")
	c.Register(&forexCmd{}, "market")
	c.Register(&treasuryCmd{}, "market")
	c.Register(&bondsCmd{}, "market")
	c.Register(&economyCmd{}, "market")
	c.Register(&predictCmd{}, "market")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Every flag falls back to an environment variable, loaded from a .env file if any.

var (
	fmpKey       = flag.String("fmp-key", "", "Financial Modeling Prep API key (FMP_API_KEY)")
	fmpURL       = flag.String("fmp-url", "", "Financial Modeling Prep API root (FMP_BASE_URL)")
	fredKey      = flag.String("fred-key", "", "FRED API key (FRED_API_KEY)")
	fredURL      = flag.String("fred-url", "", "FRED API root (FRED_BASE_URL)")
	eodhdKey     = flag.String("eodhd-key", "", "EODHD API key (EODHD_API_KEY)")
	eodhdURL     = flag.String("eodhd-url", "", "EODHD API root (EODHD_BASE_URL)")
	kalshiURL    = flag.String("kalshi-url", "", "Kalshi trade API root (KALSHI_BASE_URL)")
	dataDir      = flag.String("data", "", "Folder of the watchlists and portfolio files (DESK_DATA_DIR, defaults to ~/.marketdesk)")
	refresh      = flag.String("refresh", "", "Refresh interval of -follow views (DESK_REFRESH, defaults to 10s)")
	cache        = flag.String("cache", "", "Cache fundamentals on disk until the end of the day, week or month: daily|weekly|monthly (DESK_CACHE)")
	verbose      = flag.Bool("v", false, "Log http requests (DESK_LOG_LEVEL)")
)

// LoadEnv loads a .env file from the working directory, if any.
func LoadEnv() {
	_ = godotenv.Load()
}

// setting returns the flag value if set, otherwise the environment variable, otherwise def.
func setting(value *string, env, def string) string {
	if *value != "" {
		return *value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// DataDir returns the folder of the desk files, created on demand.
func DataDir() (string, error) {
	dir := setting(dataDir, "DESK_DATA_DIR", "")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot locate home directory: %w", err)
		}
		dir = filepath.Join(home, ".marketdesk")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create data directory %q: %w", dir, err)
	}
	return dir, nil
}

// refreshInterval returns the -follow period.
func refreshInterval() time.Duration {
	d, err := time.ParseDuration(setting(refresh, "DESK_REFRESH", "10s"))
	if err != nil || d < time.Second {
		return 10 * time.Second
	}
	return d
}

// cachePeriod returns the expiry period of the fundamentals disk cache, ok is false when
// caching is off. A boolean true means daily.
func cachePeriod() (period date.Period, ok bool, err error) {
	v := setting(cache, "DESK_CACHE", "")
	if v == "" {
		return date.Daily, false, nil
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return date.Daily, b, nil
	}
	period, err = date.ParsePeriod(v)
	if err != nil {
		return date.Daily, false, fmt.Errorf("invalid cache setting: %w", err)
	}
	return period, true, nil
}

// Logger returns the console logger, warn level unless -v or DESK_LOG_LEVEL.
func Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if l, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("DESK_LOG_LEVEL"))); err == nil && l != zerolog.NoLevel {
		level = l
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// openFMP returns an opened FMP client.
func openFMP() (*fmp.Client, error) {
	key := setting(fmpKey, "FMP_API_KEY", "")
	if key == "" {
		return nil, fmt.Errorf("missing FMP API key: set -fmp-key or FMP_API_KEY")
	}
	c := fmp.NewClient(key, setting(fmpURL, "FMP_BASE_URL", fmp.DefaultBaseURL), Logger())
	period, on, err := cachePeriod()
	if err != nil {
		return nil, err
	}
	if on {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		c.WithCache(filepath.Join(dir, "cache"), period)
	}
	return c, c.Open()
}

func openFRED() (*fred.Client, error) {
	key := setting(fredKey, "FRED_API_KEY", "")
	if key == "" {
		return nil, fmt.Errorf("missing FRED API key: set -fred-key or FRED_API_KEY")
	}
	c := fred.NewClient(key, setting(fredURL, "FRED_BASE_URL", fred.DefaultBaseURL), Logger())
	return c, c.Open()
}

func openEODHD() (*eodhd.Client, error) {
	key := setting(eodhdKey, "EODHD_API_KEY", "")
	if key == "" {
		return nil, fmt.Errorf("missing EODHD API key: set -eodhd-key or EODHD_API_KEY")
	}
	c := eodhd.NewClient(key, setting(eodhdURL, "EODHD_BASE_URL", eodhd.DefaultBaseURL), Logger())
	return c, c.Open()
}

func openKalshi() (*kalshi.Client, error) {
	c := kalshi.NewClient(setting(kalshiURL, "KALSHI_BASE_URL", kalshi.DefaultBaseURL), Logger())
	return c, c.Open()
}

// stores returns the watchlist and portfolio stores of the data directory.
func stores() (*marketdesk.WatchlistStore, *marketdesk.PortfolioStore, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, nil, err
	}
	return marketdesk.NewWatchlistStore(filepath.Join(dir, "watchlists.json")),
		marketdesk.NewPortfolioStore(filepath.Join(dir, "portfolio.json")),
		nil
}

// printMarkdown renders md for the terminal, or prints it raw if rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// symbolArg returns the single symbol argument.
func symbolArg(f *flag.FlagSet) (marketdesk.Symbol, bool) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one symbol argument")
		return "", false
	}
	s := marketdesk.NewSymbol(f.Arg(0))
	if s == "" {
		fmt.Fprintln(os.Stderr, "Error: empty symbol")
		return "", false
	}
	return s, true
}
