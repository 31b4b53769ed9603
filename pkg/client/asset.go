package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"github.com/bornholm/inventory/internal/http/handler/api"
	"github.com/pkg/errors"
)

type Asset = api.Asset

func (c *Client) CreateAsset(ctx context.Context, name, owner, assetType, region string) (*Asset, error) {
	payload, err := json.Marshal(api.CreateAssetRequest{
		Name:   name,
		Owner:  owner,
		Type:   assetType,
		Region: region,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var res api.AssetResponse

	if err := c.jsonRequest(ctx, "POST", "/assets", nil, bytes.NewReader(payload), &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Asset, nil
}

func (c *Client) QueryAssets(ctx context.Context) ([]Asset, int64, error) {
	var res api.ListAssetsResponse

	if err := c.jsonRequest(ctx, "GET", "/assets", nil, nil, &res); err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return res.Assets, res.Total, nil
}

func (c *Client) GetAsset(ctx context.Context, id string) (*Asset, error) {
	endpoint := &url.URL{
		Path: "/assets",
	}

	endpoint = endpoint.JoinPath(id)

	var res api.AssetResponse

	if err := c.jsonRequest(ctx, "GET", endpoint.String(), nil, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &res.Asset, nil
}

func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	endpoint := &url.URL{
		Path: "/assets",
	}

	endpoint = endpoint.JoinPath(id)

	var res api.DeleteAssetResponse

	if err := c.jsonRequest(ctx, "DELETE", endpoint.String(), nil, nil, &res); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
