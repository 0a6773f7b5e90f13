package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const driverName = "sqlite"

// Open opens (creating if needed) the sqlite database at dbPath and applies
// all pending migrations.
func Open(dbPath string) (*sqlx.DB, error) {
	return open(fileDSN(dbPath), 0, true)
}

// Connect opens the sqlite database at dbPath without touching its schema.
func Connect(dbPath string) (*sqlx.DB, error) {
	return open(fileDSN(dbPath), 0, false)
}

func fileDSN(dbPath string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)
}

// OpenForTesting returns a migrated private in-memory database. The pool is
// pinned to one connection because every sqlite :memory: connection is a
// separate database.
func OpenForTesting() (*sqlx.DB, error) {
	return open("file::memory:?_pragma=foreign_keys(1)", 1, true)
}

func open(dsn string, maxConns int, migrateUp bool) (*sqlx.DB, error) {
	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if maxConns > 0 {
		sqlDB.SetMaxOpenConns(maxConns)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if !migrateUp {
		return sqlx.NewDb(sqlDB, driverName), nil
	}

	if err := MigrateUp(sqlDB); err != nil {
		if cerr := sqlDB.Close(); cerr != nil {
			return nil, fmt.Errorf("failed to run migrations: %w (also failed to close db: %v)", err, cerr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return sqlx.NewDb(sqlDB, driverName), nil
}

// MigrateUp applies every migration not yet recorded in schema_migrations.
func MigrateUp(sqlDB *sql.DB) error {
	m, err := newMigrate(sqlDB)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(sqlDB *sql.DB, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	m, err := newMigrate(sqlDB)
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// Version reports the current schema version and whether the last migration
// failed halfway.
func Version(sqlDB *sql.DB) (uint, bool, error) {
	m, err := newMigrate(sqlDB)
	if err != nil {
		return 0, false, err
	}
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, dirty, nil
}

// newMigrate wires the embedded migrations to sqlDB. The returned Migrate is
// never closed: closing it would close sqlDB, which the caller owns.
func newMigrate(sqlDB *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}
	driver, err := sqlite.WithInstance(sqlDB, &sqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}
