package testsuite

import (
	"context"
	"slices"
	"testing"

	"github.com/bornholm/inventory/internal/core/model"
	"github.com/bornholm/inventory/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// TestAssetStore runs the AssetStore contract against the store returned by
// the given factory. Every adapter is expected to pass it unchanged.
func TestAssetStore(t *testing.T, factory func(t *testing.T) (port.AssetStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.AssetStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateThenGet",
			Run: func(t *testing.T, ctx context.Context, store port.AssetStore) error {
				attrs := model.AssetAttrs{
					Name:   "production-web-server",
					Owner:  "engineering-team",
					Type:   "EC2",
					Region: "us-east-1",
				}

				created, err := store.CreateAsset(ctx, attrs)
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("created: %s", spew.Sdump(created))

				if _, err := model.ParseAssetID(string(created.ID())); err != nil {
					t.Errorf("created.ID(): '%s' is not a well-formed identifier", created.ID())
				}

				retrieved, err := store.GetAssetByID(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := created.ID(), retrieved.ID(); e != g {
					t.Errorf("retrieved.ID(): expected '%s', got '%s'", e, g)
				}

				if e, g := attrs.Name, retrieved.Name(); e != g {
					t.Errorf("retrieved.Name(): expected '%s', got '%s'", e, g)
				}

				if e, g := attrs.Owner, retrieved.Owner(); e != g {
					t.Errorf("retrieved.Owner(): expected '%s', got '%s'", e, g)
				}

				if e, g := attrs.Type, retrieved.Type(); e != g {
					t.Errorf("retrieved.Type(): expected '%s', got '%s'", e, g)
				}

				if e, g := attrs.Region, retrieved.Region(); e != g {
					t.Errorf("retrieved.Region(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "GetAbsent",
			Run: func(t *testing.T, ctx context.Context, store port.AssetStore) error {
				_, err := store.GetAssetByID(ctx, model.AssetID("507f1f77bcf86cd799439099"))
				if err == nil {
					return errors.New("expected an error, got nil")
				}

				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "DeleteAbsent",
			Run: func(t *testing.T, ctx context.Context, store port.AssetStore) error {
				err := store.DeleteAssetByID(ctx, model.AssetID("507f1f77bcf86cd799439099"))
				if err == nil {
					return errors.New("expected an error, got nil")
				}

				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "DoubleDelete",
			Run: func(t *testing.T, ctx context.Context, store port.AssetStore) error {
				created, err := store.CreateAsset(ctx, model.AssetAttrs{
					Name:   "cache1",
					Owner:  "platform",
					Type:   "ElastiCache",
					Region: "eu-west-1",
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteAssetByID(ctx, created.ID()); err != nil {
					return errors.WithStack(err)
				}

				err = store.DeleteAssetByID(ctx, created.ID())
				if err == nil {
					return errors.New("expected an error on second delete, got nil")
				}

				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("expected port.ErrNotFound, got %+v", err)
				}

				_, err = store.GetAssetByID(ctx, created.ID())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("expected port.ErrNotFound after delete, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "QueryAfterDelete",
			Run: func(t *testing.T, ctx context.Context, store port.AssetStore) error {
				names := []string{"vm-a", "vm-b", "vm-c"}

				ids := map[string]model.AssetID{}
				for _, name := range names {
					created, err := store.CreateAsset(ctx, model.AssetAttrs{
						Name:   name,
						Owner:  "eng",
						Type:   "EC2",
						Region: "us-east-1",
					})
					if err != nil {
						return errors.WithStack(err)
					}

					ids[name] = created.ID()
				}

				if err := store.DeleteAssetByID(ctx, ids["vm-b"]); err != nil {
					return errors.WithStack(err)
				}

				assets, err := store.QueryAssets(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				remaining := []model.AssetID{}
				for _, a := range assets {
					remaining = append(remaining, a.ID())
				}

				if !slices.Contains(remaining, ids["vm-a"]) {
					t.Errorf("expected '%s' (vm-a) in %v", ids["vm-a"], remaining)
				}

				if !slices.Contains(remaining, ids["vm-c"]) {
					t.Errorf("expected '%s' (vm-c) in %v", ids["vm-c"], remaining)
				}

				if slices.Contains(remaining, ids["vm-b"]) {
					t.Errorf("did not expect '%s' (vm-b) in %v", ids["vm-b"], remaining)
				}

				return nil
			},
		},
		{
			Name: "Count",
			Run: func(t *testing.T, ctx context.Context, store port.AssetStore) error {
				before, err := store.CountAssets(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				created, err := store.CreateAsset(ctx, model.AssetAttrs{
					Name:   "bucket1",
					Owner:  "data",
					Type:   "S3",
					Region: "us-west-2",
				})
				if err != nil {
					return errors.WithStack(err)
				}

				after, err := store.CountAssets(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := before+1, after; e != g {
					t.Errorf("count after create: expected %d, got %d", e, g)
				}

				if err := store.DeleteAssetByID(ctx, created.ID()); err != nil {
					return errors.WithStack(err)
				}

				after, err = store.CountAssets(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := before, after; e != g {
					t.Errorf("count after delete: expected %d, got %d", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		})
	}
}
