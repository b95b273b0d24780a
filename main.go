package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/MyWhiskies/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("My Whiskies"), kong.Description("MyWhiskies is a whiskey collection catalogue."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
