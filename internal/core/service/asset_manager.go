package service

import (
	"context"

	"github.com/bornholm/inventory/internal/core/model"
	"github.com/bornholm/inventory/internal/core/port"
	"github.com/bornholm/inventory/internal/metrics"
	"github.com/pkg/errors"
)

// AssetManager is the entrypoint of the asset lifecycle: it validates
// creation attributes before any store write and keeps the registry
// metrics up to date. Everything else is delegated to the store.
type AssetManager struct {
	port.AssetStore
}

func (m *AssetManager) CreateAsset(ctx context.Context, attrs model.AssetAttrs) (model.PersistedAsset, error) {
	if err := attrs.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	asset, err := m.AssetStore.CreateAsset(ctx, attrs)
	if err != nil {
		metrics.StorageFaults.Inc()
		return nil, errors.WithStack(err)
	}

	metrics.AssetCreates.Inc()
	m.refreshAssetsGauge(ctx)

	return asset, nil
}

func (m *AssetManager) DeleteAssetByID(ctx context.Context, id model.AssetID) error {
	if err := m.AssetStore.DeleteAssetByID(ctx, id); err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			metrics.StorageFaults.Inc()
		}

		return errors.WithStack(err)
	}

	metrics.AssetDeletes.Inc()
	m.refreshAssetsGauge(ctx)

	return nil
}

// Best effort: the gauge is a convenience, a failing count must not fail
// the operation that triggered the refresh.
func (m *AssetManager) refreshAssetsGauge(ctx context.Context) {
	total, err := m.CountAssets(ctx)
	if err != nil {
		return
	}

	metrics.Assets.Set(float64(total))
}

func NewAssetManager(store port.AssetStore) *AssetManager {
	return &AssetManager{
		AssetStore: store,
	}
}
