package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rw1nkler/xls/cli"
)

var cliArgs struct {
	Version kong.VersionFlag `help:"Show version information"`
	cli.Commands
}

func main() {
	ctx := kong.Parse(&cliArgs,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("xlsfmt"),
		kong.Description("A formatter for the XLS hardware description language."),
		kong.UsageOnError(),
		kong.Bind(&cliArgs.Globals),
	)

	err := ctx.Run()
	if cmdErr, ok := err.(*cli.CommandError); ok {
		os.Exit(cmdErr.ExitCode())
	}
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if cli.Version == "" {
		cli.Version = "dev"
	}
	if cli.CommitSHA == "" {
		return cli.Version
	}
	return fmt.Sprintf("%s (%s)", cli.Version, cli.CommitSHA)
}
