//go:build !integration

package tests

import (
	"path/filepath"
	"testing"

	dbadapter "taskapi/internal/adapter/db"
	"taskapi/internal/config"
)

func testDatabaseConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		DbDriver: dbadapter.DriverSQLite,
		DbPath:   filepath.Join(t.TempDir(), "taskapi.db"),
	}
}
