package api

import (
	"net/http"

	"github.com/bornholm/inventory/internal/core/service"
)

type Handler struct {
	assetManager *service.AssetManager
	mux          *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(assetManager *service.AssetManager) *Handler {
	h := &Handler{
		assetManager: assetManager,
		mux:          &http.ServeMux{},
	}

	h.mux.Handle("GET /{$}", http.HandlerFunc(h.handleIndex))

	h.mux.Handle("POST /assets", http.HandlerFunc(h.handleCreateAsset))
	h.mux.Handle("GET /assets", http.HandlerFunc(h.handleListAssets))
	h.mux.Handle("GET /assets/{assetID}", http.HandlerFunc(h.handleGetAsset))
	h.mux.Handle("DELETE /assets/{assetID}", http.HandlerFunc(h.handleDeleteAsset))

	return h
}

var _ http.Handler = &Handler{}
