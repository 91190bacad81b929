package main

import (
	"github.com/alecthomas/kong"
)

const appName = "fcubed"

var cli struct {
	globalOptions

	Get  getCmd  `cmd:"" help:"Print the value bound to a key."`
	Dump dumpCmd `cmd:"" help:"Print every entry of a file as a table."`
	Keys keysCmd `cmd:"" help:"Print the distinct keys of a file in natural order."`
	Fmt  fmtCmd  `cmd:"" help:"Rewrite a file in canonical form."`
	Set  setCmd  `cmd:"" help:"Bind a key to a value, replacing the first matching entry."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name(appName),
		kong.Description("Inspect and edit FCubed settings files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.globalOptions)
	ctx.FatalIfErrorf(err)
}
