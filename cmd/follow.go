package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const clearScreen = "\033[H\033[2J"

// view renders a markdown document from fresh data.
type view func(ctx context.Context) (string, error)

// show prints the view once.
func show(ctx context.Context, v view) error {
	md, err := v(ctx)
	if err != nil {
		return err
	}
	printMarkdown(md)
	return nil
}

// follow prints the view every interval until interrupted. Refresh failures are logged
// and the previous screen is kept.
func follow(ctx context.Context, log zerolog.Logger, every time.Duration, v view) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	render := func() {
		md, err := v(ctx)
		if err != nil {
			log.Error().Err(err).Msg("refresh failed")
			return
		}
		fmt.Print(clearScreen)
		printMarkdown(md)
		fmt.Fprintf(os.Stderr, "refreshed %s, every %s, Ctrl+C to quit\n", time.Now().Format("15:04:05"), every)
	}

	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", every), render); err != nil {
		return fmt.Errorf("cannot schedule refresh: %w", err)
	}
	render()
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
