package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bornholm/inventory/internal/adapter/memory"
	"github.com/bornholm/inventory/internal/core/service"
	"github.com/bornholm/inventory/internal/http/handler/api"
	"github.com/pkg/errors"
)

func newTestClient(t *testing.T) *Client {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", api.NewHandler(service.NewAssetManager(memory.NewStore()))))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	baseURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return New(WithBaseURL(baseURL))
}

func TestClientAssetLifecycle(t *testing.T) {
	client := newTestClient(t)

	ctx := context.Background()

	created, err := client.CreateAsset(ctx, "web1", "eng", "EC2", "us-east-1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 24, len(created.ID); e != g {
		t.Fatalf("len(created.ID): expected %d, got %d ('%s')", e, g, created.ID)
	}

	retrieved, err := client.GetAsset(ctx, created.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "web1", retrieved.Name; e != g {
		t.Errorf("retrieved.Name: expected '%s', got '%s'", e, g)
	}

	assets, total, err := client.QueryAssets(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), total; e != g {
		t.Errorf("total: expected %d, got %d", e, g)
	}

	if e, g := 1, len(assets); e != g {
		t.Errorf("len(assets): expected %d, got %d", e, g)
	}

	if err := client.DeleteAsset(ctx, created.ID); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := client.GetAsset(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %+v", err)
	}

	if err := client.DeleteAsset(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %+v", err)
	}
}

func TestClientInvalidIdentifier(t *testing.T) {
	client := newTestClient(t)

	ctx := context.Background()

	if _, err := client.GetAsset(ctx, "abc"); err == nil {
		t.Error("expected an error, got nil")
	} else if errors.Is(err, ErrNotFound) {
		t.Errorf("expected a client fault, got ErrNotFound: %+v", err)
	}
}
