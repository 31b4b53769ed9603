package memory

import (
	"testing"

	"github.com/bornholm/inventory/internal/core/port"
	"github.com/bornholm/inventory/internal/core/port/testsuite"
)

func TestAssetStore(t *testing.T) {
	testsuite.TestAssetStore(t, func(t *testing.T) (port.AssetStore, error) {
		return NewStore(), nil
	})
}
