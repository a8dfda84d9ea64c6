package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"taskapi/db/migrations"
	"taskapi/internal/config"
)

// Migrator applies the embedded schema for the configured driver. It owns a
// dedicated connection that Close releases.
type Migrator struct {
	migrate *migrate.Migrate
	driver  string
}

func NewMigrator(conf *config.Config) (*Migrator, error) {
	driverName, dsn, err := DataSource(conf)
	if err != nil {
		return nil, err
	}

	dialect := conf.DbDriver
	if dialect == "" {
		dialect = DriverMySQL
	}

	sourceDriver, err := iofs.New(migrations.FS, dialect)
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", dialect, err)
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	var dbDriver database.Driver
	switch dialect {
	case DriverMySQL:
		dbDriver, err = migratemysql.WithInstance(conn, &migratemysql.Config{})
	case DriverPostgres:
		dbDriver, err = migratepgx.WithInstance(conn, &migratepgx.Config{})
	case DriverSQLite:
		dbDriver, err = migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	}
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create %s migration driver: %w", dialect, err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, dialect, dbDriver)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	return &Migrator{migrate: m, driver: dialect}, nil
}

func (m *Migrator) Up() error {
	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		zap.L().Info("database schema up to date", zap.String("driver", m.driver))
		return nil
	}
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	zap.L().Info("database migrations applied", zap.String("driver", m.driver))
	return nil
}

// Down rolls back steps migrations, or all of them when steps <= 0.
func (m *Migrator) Down(steps int) error {
	var err error
	if steps <= 0 {
		err = m.migrate.Down()
	} else {
		err = m.migrate.Steps(-steps)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("roll back migrations: %w", err)
	}

	zap.L().Info("database migrations rolled back", zap.String("driver", m.driver), zap.Int("steps", steps))
	return nil
}

// Version reports the applied schema version. ok is false on an empty
// database.
func (m *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("read schema version: %w", err)
	}
	return version, dirty, true, nil
}

func (m *Migrator) Close() error {
	sourceErr, dbErr := m.migrate.Close()
	return errors.Join(sourceErr, dbErr)
}

// MigrateUp brings the schema of conf's database to the latest version.
func MigrateUp(conf *config.Config) error {
	m, err := NewMigrator(conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			zap.L().Warn("failed to close migrator", zap.Error(err))
		}
	}()
	return m.Up()
}
