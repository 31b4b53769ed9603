package gorm

import (
	"context"
	"sync"

	"github.com/bornholm/inventory/internal/core/model"
	"github.com/bornholm/inventory/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Store struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

// CountAssets implements port.AssetStore.
func (s *Store) CountAssets(ctx context.Context) (int64, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	var total int64

	if err := db.WithContext(ctx).Model(&Asset{}).Count(&total).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

// CreateAsset implements port.AssetStore.
func (s *Store) CreateAsset(ctx context.Context, attrs model.AssetAttrs) (model.PersistedAsset, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	asset := fromAttrs(model.NewAssetID(), attrs)

	if res := db.WithContext(ctx).Create(asset); res.Error != nil {
		return nil, errors.WithStack(res.Error)
	}

	return &wrappedAsset{asset}, nil
}

// QueryAssets implements port.AssetStore.
func (s *Store) QueryAssets(ctx context.Context) ([]model.PersistedAsset, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var records []*Asset

	if err := db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	assets := make([]model.PersistedAsset, 0, len(records))
	for _, r := range records {
		assets = append(assets, &wrappedAsset{r})
	}

	return assets, nil
}

// GetAssetByID implements port.AssetStore.
func (s *Store) GetAssetByID(ctx context.Context, id model.AssetID) (model.PersistedAsset, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var asset Asset

	if err := db.WithContext(ctx).First(&asset, "id = ?", string(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(port.ErrNotFound, "asset '%s'", id)
		}

		return nil, errors.WithStack(err)
	}

	return &wrappedAsset{&asset}, nil
}

// DeleteAssetByID implements port.AssetStore.
func (s *Store) DeleteAssetByID(ctx context.Context, id model.AssetID) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	res := db.WithContext(ctx).Delete(&Asset{}, "id = ?", string(id))
	if res.Error != nil {
		return errors.WithStack(res.Error)
	}

	if res.RowsAffected == 0 {
		return errors.Wrapf(port.ErrNotFound, "asset '%s'", id)
	}

	return nil
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		getDatabase: createGetDatabase(db),
	}
}

var _ port.AssetStore = &Store{}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			models := []any{
				&Asset{},
			}

			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}
