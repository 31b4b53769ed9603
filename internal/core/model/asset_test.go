package model

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
)

func TestNewAssetID(t *testing.T) {
	seen := map[AssetID]struct{}{}

	for range 1000 {
		id := NewAssetID()

		if e, g := 24, len(id); e != g {
			t.Fatalf("len(id): expected %d, got %d ('%s')", e, g, id)
		}

		if _, err := hex.DecodeString(string(id)); err != nil {
			t.Fatalf("id '%s' is not hexadecimal: %+v", id, errors.WithStack(err))
		}

		if _, exists := seen[id]; exists {
			t.Fatalf("id '%s' was generated twice", id)
		}

		seen[id] = struct{}{}
	}
}

func TestParseAssetID(t *testing.T) {
	testCases := []struct {
		Raw   string
		Valid bool
	}{
		{Raw: "507f1f77bcf86cd799439011", Valid: true},
		{Raw: "507F1F77BCF86CD799439011", Valid: true},
		{Raw: "507f1f77bcf86cd79943901g", Valid: false},
		{Raw: "abc", Valid: false},
		{Raw: "", Valid: false},
		{Raw: "507f1f77bcf86cd7994390112", Valid: false},
		{Raw: "507f1f77bcf86cd79943901122", Valid: false},
		{Raw: "507f1f77-cf86cd7994390112", Valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Raw, func(t *testing.T) {
			id, err := ParseAssetID(tc.Raw)

			if !tc.Valid {
				if err == nil {
					t.Fatalf("expected an error, got id '%s'", id)
				}

				if !errors.Is(err, ErrInvalidAssetID) {
					t.Errorf("expected ErrInvalidAssetID, got %+v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := 24, len(id); e != g {
				t.Errorf("len(id): expected %d, got %d", e, g)
			}
		})
	}
}

func TestParseAssetIDNormalizesCase(t *testing.T) {
	id, err := ParseAssetID("507F1F77BCF86CD799439011")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := AssetID("507f1f77bcf86cd799439011"), id; e != g {
		t.Errorf("id: expected '%s', got '%s'", e, g)
	}
}

func TestAssetAttrsValidate(t *testing.T) {
	valid := AssetAttrs{
		Name:   "production-web-server",
		Owner:  "engineering-team",
		Type:   "EC2",
		Region: "us-east-1",
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	testCases := []struct {
		Name          string
		Attrs         AssetAttrs
		ExpectedField string
	}{
		{
			Name:          "MissingName",
			Attrs:         AssetAttrs{Owner: "eng", Type: "EC2", Region: "us-east-1"},
			ExpectedField: "name",
		},
		{
			Name:          "MissingOwner",
			Attrs:         AssetAttrs{Name: "web1", Type: "EC2", Region: "us-east-1"},
			ExpectedField: "owner",
		},
		{
			Name:          "MissingType",
			Attrs:         AssetAttrs{Name: "web1", Owner: "eng", Region: "us-east-1"},
			ExpectedField: "type",
		},
		{
			Name:          "MissingRegion",
			Attrs:         AssetAttrs{Name: "web1", Owner: "eng", Type: "EC2"},
			ExpectedField: "region",
		},
		{
			// Fields are checked in order: an entirely empty input
			// reports the name first.
			Name:          "AllMissing",
			Attrs:         AssetAttrs{},
			ExpectedField: "name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := tc.Attrs.Validate()
			if err == nil {
				t.Fatal("expected an error, got nil")
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected a *ValidationError, got %+v", err)
			}

			if e, g := tc.ExpectedField, validationErr.Field; e != g {
				t.Errorf("validationErr.Field: expected '%s', got '%s'", e, g)
			}
		})
	}
}
