package service

import (
	"context"
	"testing"

	"github.com/bornholm/inventory/internal/core/model"
	"github.com/bornholm/inventory/internal/core/port"
	"github.com/pkg/errors"
)

type sentinelStore struct {
	t *testing.T
}

// CountAssets implements port.AssetStore.
func (s *sentinelStore) CountAssets(ctx context.Context) (int64, error) {
	return 0, nil
}

// CreateAsset implements port.AssetStore.
func (s *sentinelStore) CreateAsset(ctx context.Context, attrs model.AssetAttrs) (model.PersistedAsset, error) {
	s.t.Fatal("store was reached with invalid attributes")
	return nil, nil
}

// QueryAssets implements port.AssetStore.
func (s *sentinelStore) QueryAssets(ctx context.Context) ([]model.PersistedAsset, error) {
	return nil, nil
}

// GetAssetByID implements port.AssetStore.
func (s *sentinelStore) GetAssetByID(ctx context.Context, id model.AssetID) (model.PersistedAsset, error) {
	return nil, errors.WithStack(port.ErrNotFound)
}

// DeleteAssetByID implements port.AssetStore.
func (s *sentinelStore) DeleteAssetByID(ctx context.Context, id model.AssetID) error {
	return errors.WithStack(port.ErrNotFound)
}

var _ port.AssetStore = &sentinelStore{}

func TestAssetManagerValidatesBeforeStore(t *testing.T) {
	manager := NewAssetManager(&sentinelStore{t: t})

	ctx := context.Background()

	_, err := manager.CreateAsset(ctx, model.AssetAttrs{
		Owner:  "eng",
		Type:   "EC2",
		Region: "us-east-1",
	})
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var validationErr *model.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected a *model.ValidationError, got %+v", err)
	}

	if e, g := "name", validationErr.Field; e != g {
		t.Errorf("validationErr.Field: expected '%s', got '%s'", e, g)
	}
}

func TestAssetManagerPassesThroughNotFound(t *testing.T) {
	manager := NewAssetManager(&sentinelStore{t: t})

	ctx := context.Background()

	if err := manager.DeleteAssetByID(ctx, model.AssetID("507f1f77bcf86cd799439099")); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("expected port.ErrNotFound, got %+v", err)
	}
}
