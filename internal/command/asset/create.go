package asset

import (
	"fmt"

	"github.com/bornholm/inventory/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagName   = "name"
	flagOwner  = "owner"
	flagType   = "type"
	flagRegion = "region"
)

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Register a new asset",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagName,
				Aliases:  []string{"n"},
				Usage:    "Asset name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagOwner,
				Aliases:  []string{"o"},
				Usage:    "Owning team",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagType,
				Aliases:  []string{"t"},
				Usage:    "Resource type (e.g. 'EC2', 'S3')",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagRegion,
				Aliases:  []string{"r"},
				Usage:    "Cloud region (e.g. 'us-east-1')",
				Required: true,
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			inventoryClient, err := common.GetInventoryClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			asset, err := inventoryClient.CreateAsset(ctx,
				cCtx.String(flagName),
				cCtx.String(flagOwner),
				cCtx.String(flagType),
				cCtx.String(flagRegion),
			)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Println(asset.ID)

			return nil
		},
	}
}
