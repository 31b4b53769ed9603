package asset

import (
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "asset",
		Usage: "Manage registered cloud assets",
		Subcommands: []*cli.Command{
			createCommand(),
			listCommand(),
			getCommand(),
			deleteCommand(),
		},
	}
}
