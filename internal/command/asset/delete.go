package asset

import (
	"fmt"

	"github.com/bornholm/inventory/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Remove a registered asset",
		ArgsUsage: "<asset-id>",
		Flags:     common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			assetID := cCtx.Args().First()
			if assetID == "" {
				return errors.New("missing required argument <asset-id>")
			}

			inventoryClient, err := common.GetInventoryClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := inventoryClient.DeleteAsset(ctx, assetID); err != nil {
				return errors.WithStack(err)
			}

			fmt.Printf("deleted %s\n", assetID)

			return nil
		},
	}
}
