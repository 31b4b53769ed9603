package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/inventory/internal/core/model"
	"github.com/bornholm/inventory/internal/core/port"
	"github.com/pkg/errors"
)

type Asset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	Type      string    `json:"type"`
	Region    string    `json:"region"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAsset(a model.PersistedAsset) Asset {
	return Asset{
		ID:        string(a.ID()),
		Name:      a.Name(),
		Owner:     a.Owner(),
		Type:      a.Type(),
		Region:    a.Region(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

type CreateAssetRequest struct {
	Name   string `json:"name"`
	Owner  string `json:"owner"`
	Type   string `json:"type"`
	Region string `json:"region"`
}

type AssetResponse struct {
	Asset Asset `json:"asset"`
}

func (h *Handler) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(ctx, "could not decode request body", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	attrs := model.AssetAttrs{
		Name:   req.Name,
		Owner:  req.Owner,
		Type:   req.Type,
		Region: req.Region,
	}

	asset, err := h.assetManager.CreateAsset(ctx, attrs)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}

		slog.ErrorContext(ctx, "could not create asset", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := AssetResponse{
		Asset: toAsset(asset),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slogx.Error(err))
	}
}

type ListAssetsResponse struct {
	Assets []Asset `json:"assets"`
	Total  int64   `json:"total"`
}

func (h *Handler) handleListAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assets, err := h.assetManager.QueryAssets(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not query assets", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListAssetsResponse{
		Assets: make([]Asset, 0, len(assets)),
		Total:  int64(len(assets)),
	}

	for _, a := range assets {
		res.Assets = append(res.Assets, toAsset(a))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slogx.Error(err))
	}
}

func (h *Handler) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assetID, err := model.ParseAssetID(r.PathValue("assetID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	asset, err := h.assetManager.GetAssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not get asset", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := AssetResponse{
		Asset: toAsset(asset),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slogx.Error(err))
	}
}

type DeleteAssetResponse struct {
	ID string `json:"id"`
}

func (h *Handler) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assetID, err := model.ParseAssetID(r.PathValue("assetID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.assetManager.DeleteAssetByID(ctx, assetID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not delete asset", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := DeleteAssetResponse{
		ID: string(assetID),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(ctx, "could not encode response", slogx.Error(err))
	}
}
