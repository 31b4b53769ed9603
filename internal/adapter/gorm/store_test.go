package gorm

import (
	"path/filepath"
	"testing"

	"github.com/bornholm/inventory/internal/core/port"
	"github.com/bornholm/inventory/internal/core/port/testsuite"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func TestAssetStore(t *testing.T) {
	testsuite.TestAssetStore(t, func(t *testing.T) (port.AssetStore, error) {
		dsn := filepath.Join(t.TempDir(), "data.sqlite")

		db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		internalDB, err := db.DB()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		internalDB.SetMaxOpenConns(1)

		if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=5000").Error; err != nil {
			return nil, errors.WithStack(err)
		}

		return NewStore(db), nil
	})
}
