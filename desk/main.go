// Command desk is a terminal market data dashboard.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/marketdesk/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// answers shell completion requests and exits, does nothing otherwise.
	cmd.Completion(commander).Complete("desk")

	cmd.LoadEnv()
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
