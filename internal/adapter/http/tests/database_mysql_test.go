//go:build integration

package tests

import (
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	dbadapter "taskapi/internal/adapter/db"
	"taskapi/internal/config"
)

// testDatabaseConfig points the suite at a MySQL server, creating the
// test database on first use. The suite is skipped when MySQL is down.
func testDatabaseConfig(t *testing.T) *config.Config {
	t.Helper()

	conf := &config.Config{
		DbDriver:   dbadapter.DriverMySQL,
		DbHost:     envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DbPort:     envOrDefault("MYSQL_PORT", "3306"),
		DbUser:     envOrDefault("MYSQL_ROOT_USER", "root"),
		DbPassword: envOrDefault("MYSQL_ROOT_PASSWORD", "root"),
		DbName:     envOrDefault("MYSQL_TEST_DATABASE", "taskapi_test"),
	}

	adminDSN := fmt.Sprintf("%s:%s@tcp(%s:%s)/", conf.DbUser, conf.DbPassword, conf.DbHost, conf.DbPort)
	adminDB, err := sqlx.Connect("mysql", adminDSN)
	if err != nil {
		t.Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	defer adminDB.Close()

	_, err = adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", conf.DbName))
	require.NoError(t, err)

	return conf
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
