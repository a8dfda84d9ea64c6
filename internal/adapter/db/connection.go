package db

import (
	"fmt"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"taskapi/internal/config"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultMySQLParams    = "parseTime=true&multiStatements=true&clientFoundRows=true"
	defaultPostgresParams = "sslmode=disable"
	defaultSQLiteParams   = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	driverName, dsn, err := DataSource(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", conf.DbDriver, err)
	}

	// A single connection keeps SQLite writers from locking each other out.
	if conf.DbDriver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

// DataSource returns the database/sql driver name and DSN for conf.
func DataSource(conf *config.Config) (string, string, error) {
	params := conf.DbParams

	switch conf.DbDriver {
	case DriverMySQL, "":
		if params == "" {
			params = defaultMySQLParams
		}
		return "mysql", fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		), nil
	case DriverPostgres:
		if params == "" {
			params = defaultPostgresParams
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(conf.DbUser, conf.DbPassword),
			Host:     conf.DbHost + ":" + conf.DbPort,
			Path:     "/" + conf.DbName,
			RawQuery: params,
		}
		return "pgx", u.String(), nil
	case DriverSQLite:
		if params == "" {
			params = defaultSQLiteParams
		}
		return "sqlite", "file:" + conf.DbPath + "?" + params, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %q", conf.DbDriver)
	}
}
