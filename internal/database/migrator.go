package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsPath = "db/migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// Migrator applies the SQL migrations under db/migrations. There is no seed
// stage: development data comes from the generate-test-data endpoint, which
// goes through the same validation as real writes.
type Migrator struct {
	db         *sql.DB
	sourcePath string
}

// NewMigrator creates a migrator reading from the default migrations path
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{
		db:         db,
		sourcePath: migrationsPath,
	}
}

// WaitUntilReady blocks until the database answers pings or retries run out.
// In docker-compose startups postgres regularly comes up after the API.
func (m *Migrator) WaitUntilReady() error {
	for i := 0; i < maxRetries; i++ {
		err := m.db.Ping()
		if err == nil {
			return nil
		}

		log.Printf("Database not ready (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

// Apply runs all pending migrations. A missing migrations directory is not
// an error; the caller falls back to AutoMigrate.
func (m *Migrator) Apply() error {
	if _, err := os.Stat(m.sourcePath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping", m.sourcePath)
		return nil
	}

	instance, err := m.instance()
	if err != nil {
		return err
	}

	version, dirty, err := instance.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	if dirty {
		log.Printf("Warning: database is dirty at version %d, forcing version", version)
		if err := instance.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = instance.Up()
	switch err {
	case nil:
		newVersion, _, verr := instance.Version()
		if verr != nil {
			return fmt.Errorf("failed to get new migration version: %w", verr)
		}
		log.Printf("Applied migrations, now at version %d", newVersion)
	case migrate.ErrNoChange:
		log.Println("No new migrations to apply")
	default:
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Status reports the current migration version and dirty flag
func (m *Migrator) Status() (version uint, dirty bool, err error) {
	if _, statErr := os.Stat(m.sourcePath); os.IsNotExist(statErr) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	instance, err := m.instance()
	if err != nil {
		return 0, false, err
	}

	return instance.Version()
}

func (m *Migrator) instance() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(m.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	instance, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", absPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return instance, nil
}

// RunMigrationsIfEnabled applies SQL migrations when AUTO_MIGRATE=true
func RunMigrationsIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		log.Println("Auto-migration disabled (AUTO_MIGRATE != true)")
		return nil
	}

	migrator := NewMigrator(db)

	if err := migrator.WaitUntilReady(); err != nil {
		return err
	}

	return migrator.Apply()
}
