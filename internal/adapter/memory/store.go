package memory

import (
	"context"
	"sync"

	"github.com/bornholm/inventory/internal/core/model"
	"github.com/bornholm/inventory/internal/core/port"
	"github.com/pkg/errors"
)

// Store keeps assets in a mutex-guarded map. It backs tests and the
// "memory" storage driver; nothing survives a restart.
type Store struct {
	mutex  sync.RWMutex
	assets map[model.AssetID]*model.BaseAsset
}

// CountAssets implements port.AssetStore.
func (s *Store) CountAssets(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.assets)), nil
}

// CreateAsset implements port.AssetStore.
func (s *Store) CreateAsset(ctx context.Context, attrs model.AssetAttrs) (model.PersistedAsset, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	asset := model.NewAsset(model.NewAssetID(), attrs)
	s.assets[asset.ID()] = asset

	return asset, nil
}

// QueryAssets implements port.AssetStore.
func (s *Store) QueryAssets(ctx context.Context) ([]model.PersistedAsset, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	assets := make([]model.PersistedAsset, 0, len(s.assets))
	for _, a := range s.assets {
		assets = append(assets, a)
	}

	return assets, nil
}

// GetAssetByID implements port.AssetStore.
func (s *Store) GetAssetByID(ctx context.Context, id model.AssetID) (model.PersistedAsset, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	asset, exists := s.assets[id]
	if !exists {
		return nil, errors.Wrapf(port.ErrNotFound, "asset '%s'", id)
	}

	return asset, nil
}

// DeleteAssetByID implements port.AssetStore.
func (s *Store) DeleteAssetByID(ctx context.Context, id model.AssetID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.assets[id]; !exists {
		return errors.Wrapf(port.ErrNotFound, "asset '%s'", id)
	}

	delete(s.assets, id)

	return nil
}

func NewStore() *Store {
	return &Store{
		assets: map[model.AssetID]*model.BaseAsset{},
	}
}

var _ port.AssetStore = &Store{}
