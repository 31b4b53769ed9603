package asset

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bornholm/inventory/internal/command/common"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List registered assets",
		Flags: common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			inventoryClient, err := common.GetInventoryClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			assets, total, err := inventoryClient.QueryAssets(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

			fmt.Fprintln(w, "ID\tNAME\tOWNER\tTYPE\tREGION\tCREATED")

			for _, a := range assets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Owner, a.Type, a.Region, humanize.Time(a.CreatedAt))
			}

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("total: %d\n", total)

			return nil
		},
	}
}
