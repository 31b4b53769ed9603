package gorm

import (
	"time"

	"github.com/bornholm/inventory/internal/core/model"
)

type Asset struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Name   string
	Owner  string
	Type   string
	Region string
}

type wrappedAsset struct {
	a *Asset
}

// ID implements model.PersistedAsset.
func (w *wrappedAsset) ID() model.AssetID {
	return model.AssetID(w.a.ID)
}

// Name implements model.PersistedAsset.
func (w *wrappedAsset) Name() string {
	return w.a.Name
}

// Owner implements model.PersistedAsset.
func (w *wrappedAsset) Owner() string {
	return w.a.Owner
}

// Type implements model.PersistedAsset.
func (w *wrappedAsset) Type() string {
	return w.a.Type
}

// Region implements model.PersistedAsset.
func (w *wrappedAsset) Region() string {
	return w.a.Region
}

// CreatedAt implements model.PersistedAsset.
func (w *wrappedAsset) CreatedAt() time.Time {
	return w.a.CreatedAt
}

// UpdatedAt implements model.PersistedAsset.
func (w *wrappedAsset) UpdatedAt() time.Time {
	return w.a.UpdatedAt
}

var _ model.PersistedAsset = &wrappedAsset{}

func fromAttrs(id model.AssetID, attrs model.AssetAttrs) *Asset {
	return &Asset{
		ID:     string(id),
		Name:   attrs.Name,
		Owner:  attrs.Owner,
		Type:   attrs.Type,
		Region: attrs.Region,
	}
}
