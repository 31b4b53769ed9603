package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameAssets        = "assets"
	NameAssetCreates  = "asset_creates_total"
	NameAssetDeletes  = "asset_deletes_total"
	NameStorageFaults = "storage_faults_total"
)

var Assets = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name:      NameAssets,
		Help:      "Currently registered assets",
		Namespace: Namespace,
	},
)

var AssetCreates = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameAssetCreates,
		Help:      "Total asset creations",
		Namespace: Namespace,
	},
)

var AssetDeletes = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameAssetDeletes,
		Help:      "Total asset deletions",
		Namespace: Namespace,
	},
)

var StorageFaults = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameStorageFaults,
		Help:      "Total storage-layer failures surfaced to callers",
		Namespace: Namespace,
	},
)
