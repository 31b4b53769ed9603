package setup

import (
	"context"

	gormAdapter "github.com/bornholm/inventory/internal/adapter/gorm"
	"github.com/bornholm/inventory/internal/adapter/memory"
	"github.com/bornholm/inventory/internal/config"
	"github.com/bornholm/inventory/internal/core/port"
	"github.com/pkg/errors"
)

var getAssetStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.AssetStore, error) {
	switch driver := conf.Storage.Database.Driver; driver {
	case "sqlite":
		db, err := getGormDatabaseFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return gormAdapter.NewStore(db), nil

	case "memory":
		return memory.NewStore(), nil

	default:
		return nil, errors.Errorf("unknown storage driver '%s'", driver)
	}
})
