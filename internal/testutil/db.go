// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"chat-demo-backend/internal/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// NewDB opens a migrated sqlite store in a temporary directory. It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.EnvConfig{
		DBDriver:  config.DriverSQLite,
		DBURL:     "file:" + filepath.Join(t.TempDir(), "test.db"),
		DBMigrate: true,
	}
	db, err := config.ConnectDB(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, config.MigrateAllModels(db, cfg.DBMigrate))

	t.Cleanup(func() {
		_ = config.CloseDB(db)
	})
	return db
}
