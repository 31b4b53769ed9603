package asset

import (
	"encoding/json"
	"os"

	"github.com/bornholm/inventory/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show a registered asset",
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

			asset, err := inventoryClient.GetAsset(ctx, assetID)
			if err != nil {
				return errors.WithStack(err)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")

			if err := encoder.Encode(asset); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
