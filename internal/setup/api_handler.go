package setup

import (
	"context"

	"github.com/bornholm/inventory/internal/config"
	"github.com/bornholm/inventory/internal/http/handler/api"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	assetManager, err := getAssetManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return api.NewHandler(assetManager), nil
}
