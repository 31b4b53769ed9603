package model

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// AssetID is the store-assigned identifier of an asset. Its external
// representation is always 24 lowercase hexadecimal characters, the
// encoding of a 12 byte value.
type AssetID string

const rawAssetIDSize = 12

var ErrInvalidAssetID = errors.New("invalid asset id")

func NewAssetID() AssetID {
	return AssetID(hex.EncodeToString(xid.New().Bytes()))
}

// ParseAssetID checks that raw has the expected 24 hexadecimal character
// shape before it is ever used against a store; a malformed identifier can
// never match a stored asset.
func ParseAssetID(raw string) (AssetID, error) {
	decoded, err := hex.DecodeString(raw)
	if err != nil || len(decoded) != rawAssetIDSize {
		return "", errors.Wrapf(ErrInvalidAssetID, "'%s'", raw)
	}

	return AssetID(hex.EncodeToString(decoded)), nil
}

type Asset interface {
	ID() AssetID
	Name() string
	Owner() string
	Type() string
	Region() string
}

type PersistedAsset interface {
	Asset
	WithLifecycle
}

// AssetAttrs is the caller-supplied part of an asset. The identifier is
// always assigned by the store on creation.
type AssetAttrs struct {
	Name   string
	Owner  string
	Type   string
	Region string
}

// Validate reports the first empty required field, in order: name, owner,
// type, region. Callers must not reach the store with invalid attributes.
func (a AssetAttrs) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", a.Name},
		{"owner", a.Owner},
		{"type", a.Type},
		{"region", a.Region},
	}

	for _, f := range fields {
		if f.value == "" {
			return errors.WithStack(&ValidationError{Field: f.name})
		}
	}

	return nil
}

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field '%s'", e.Field)
}

type BaseAsset struct {
	id        AssetID
	name      string
	owner     string
	assetType string
	region    string
	createdAt time.Time
	updatedAt time.Time
}

// ID implements PersistedAsset.
func (a *BaseAsset) ID() AssetID {
	return a.id
}

// Name implements PersistedAsset.
func (a *BaseAsset) Name() string {
	return a.name
}

// Owner implements PersistedAsset.
func (a *BaseAsset) Owner() string {
	return a.owner
}

// Type implements PersistedAsset.
func (a *BaseAsset) Type() string {
	return a.assetType
}

// Region implements PersistedAsset.
func (a *BaseAsset) Region() string {
	return a.region
}

// CreatedAt implements PersistedAsset.
func (a *BaseAsset) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt implements PersistedAsset.
func (a *BaseAsset) UpdatedAt() time.Time {
	return a.updatedAt
}

var _ PersistedAsset = &BaseAsset{}

func NewAsset(id AssetID, attrs AssetAttrs) *BaseAsset {
	now := time.Now().UTC()
	return &BaseAsset{
		id:        id,
		name:      attrs.Name,
		owner:     attrs.Owner,
		assetType: attrs.Type,
		region:    attrs.Region,
		createdAt: now,
		updatedAt: now,
	}
}
