package setup

import (
	"context"

	"github.com/bornholm/inventory/internal/config"
	"github.com/bornholm/inventory/internal/core/service"
	"github.com/pkg/errors"
)

var getAssetManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.AssetManager, error) {
	store, err := getAssetStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewAssetManager(store), nil
})
