package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewHandler() http.Handler {
	mux := &http.ServeMux{}

	mux.Handle("GET /{$}", promhttp.Handler())

	return mux
}
