package port

import (
	"context"

	"github.com/bornholm/inventory/internal/core/model"
)

// AssetStore is the storage contract of the registry. Implementations own
// the mapping from identifier to asset for the lifetime of the store: ids
// are assigned on creation and never reused after deletion.
//
// Implementations wrap backend failures and pass them through untouched;
// they never retry, log or suppress. Absence is always reported as
// ErrNotFound, wrapped with the identifier.
type AssetStore interface {
	CountAssets(ctx context.Context) (int64, error)

	// CreateAsset persists the given attributes as a new asset and returns
	// it with its store-assigned identifier. Attributes are expected to be
	// already validated. The write is atomic: either the asset exists with
	// an id afterward, or it does not exist at all.
	CreateAsset(ctx context.Context, attrs model.AssetAttrs) (model.PersistedAsset, error)

	// QueryAssets returns all stored assets as a materialized slice, in
	// store-defined order.
	QueryAssets(ctx context.Context) ([]model.PersistedAsset, error)

	// GetAssetByID only checks existence: the identifier shape is the
	// caller's concern, via model.ParseAssetID.
	GetAssetByID(ctx context.Context, id model.AssetID) (model.PersistedAsset, error)

	// DeleteAssetByID removes the asset if present. Deleting an already
	// removed id yields ErrNotFound, not success.
	DeleteAssetByID(ctx context.Context, id model.AssetID) error
}
