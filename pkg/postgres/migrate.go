package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // register postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // register file source driver
)

type migrateDirection int

const (
	migrateUp migrateDirection = iota
	migrateDown
)

// RunMigrations applies every pending migration from sourceURL (for example
// "file://./migrations"). A database already at the latest version is not an
// error.
func RunMigrations(dsn, sourceURL string) error {
	return runMigrations(dsn, sourceURL, migrateUp)
}

// RunMigrationsDown rolls back every applied migration.
func RunMigrationsDown(dsn, sourceURL string) error {
	return runMigrations(dsn, sourceURL, migrateDown)
}

func runMigrations(dsn, sourceURL string, dir migrateDirection) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("postgres: create migrator: %w", err)
	}
	defer m.Close()

	step := m.Up
	if dir == migrateDown {
		step = m.Down
	}
	if err := step(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgres: run migrations: %w", err)
	}
	return nil
}
