package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"cardapi/internal/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

// Run applies every pending migration for the given driver.
// It is safe to call on every startup; already-applied versions are skipped.
//
// Run takes ownership of db and closes it before returning, releasing the
// connection the migrator pins for its advisory lock. Pass a dedicated handle,
// never the application pool.
func Run(db *sql.DB, driver string, log logrus.FieldLogger) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{
		"component": "database",
		"db_driver": driver,
	})

	log.WithFields(logrus.Fields{"event": "db_migration_check", "status": "starting"}).Info("checking schema version")

	m, err := newMigrator(db, driver)
	if err != nil {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"status":      "error",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("cannot prepare migrator")
		_ = db.Close()
		return err
	}
	defer closeMigrator(m, log)

	from := currentVersion(m)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.WithFields(logrus.Fields{
				"event":       "db_migration_skip",
				"status":      "success",
				"version":     from,
				"duration_ms": time.Since(start).Milliseconds(),
			}).Info("schema already up to date, skipping migration")
			return nil
		}
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"status":      "error",
			"version":     from,
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("migration failed")
		return fmt.Errorf("run migrations: %w", err)
	}

	log.WithFields(logrus.Fields{
		"event":        "db_migration_success",
		"status":       "success",
		"from_version": from,
		"version":      currentVersion(m),
		"duration_ms":  time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}

func newMigrator(db *sql.DB, driver string) (*migrate.Migrate, error) {
	var (
		dbDriver database.Driver
		dir      string
		err      error
	)
	switch driver {
	case config.DriverPostgres, "":
		dir = "postgres"
		dbDriver, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	case config.DriverSQLite:
		dir = "sqlite"
		dbDriver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("create migration db driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, dir)
	if err != nil {
		_ = dbDriver.Close()
		return nil, fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, dir, dbDriver)
	if err != nil {
		_ = sourceDriver.Close()
		_ = dbDriver.Close()
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// closeMigrator closes the source and the database driver, which in turn
// releases the pinned connection and closes the underlying handle.
func closeMigrator(m *migrate.Migrate, log logrus.FieldLogger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		log.WithFields(logrus.Fields{
			"event":        "db_migration_close",
			"status":       "error",
			"source_error": fmt.Sprint(srcErr),
			"db_error":     fmt.Sprint(dbErr),
		}).Warn("cannot close migrator")
	}
}

func currentVersion(m *migrate.Migrate) uint {
	v, _, err := m.Version()
	if err != nil {
		return 0
	}
	return v
}
