package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"gitlab.com/screener/clicmds"
)

func main() {
	app := cli.NewApp()
	app.Name = "screener"
	app.Version = "0.1"
	app.Usage = "Find elements the way a user sees them"
	app.Commands = []*cli.Command{
		{
			Name:            "query",
			Aliases:         []string{"q"},
			Usage:           "resolve a locator against a file or page",
			ArgsUsage:       "SELECTOR",
			HideHelpCommand: true,
			Action:          clicmds.Query,
			Flags:           clicmds.QueryFlags(),
		},
		{
			Name:    "kinds",
			Aliases: []string{"k"},
			Usage:   "list locator kinds and strategies",
			Action:  clicmds.Kinds,
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
