package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/slok/tasks/internal/log"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded KV schema migrations on a SQLite database.
type Migrator struct {
	db     *sql.DB
	logger log.Logger
}

// NewMigrator creates a new migrator instance.
func NewMigrator(db *sql.DB, logger log.Logger) (*Migrator, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	if logger == nil {
		logger = log.Noop
	}

	return &Migrator{
		db:     db,
		logger: logger.WithValues(log.Kv{"svc": "storage.SQLiteMigrator"}),
	}, nil
}

// Up runs all available migrations.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, "apply", func(inst *migrate.Migrate) error { return inst.Up() })
}

// Down reverts all migrations.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, "revert", func(inst *migrate.Migrate) error { return inst.Down() })
}

// Version returns the current schema version, ok is false when no migration has been applied.
func (m *Migrator) Version(ctx context.Context) (version uint, ok bool, err error) {
	err = m.withInstance(ctx, func(inst *migrate.Migrate) error {
		v, dirty, err := inst.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				return nil
			}
			return fmt.Errorf("could not get version: %w", err)
		}
		if dirty {
			return fmt.Errorf("schema version %d is dirty", v)
		}
		version, ok = v, true
		return nil
	})

	return version, ok, err
}

func (m *Migrator) run(ctx context.Context, action string, f func(inst *migrate.Migrate) error) error {
	return m.withInstance(ctx, func(inst *migrate.Migrate) error {
		err := f(inst)
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("could not %s migrations: %w", action, err)
		}

		m.logger.Debugf("Migrations %s finished", action)
		return nil
	})
}

// withInstance runs f with a migrate instance backed by the embedded migrations.
// The migrate instance is not closed because that would close the shared db.
func (m *Migrator) withInstance(ctx context.Context, f func(inst *migrate.Migrate) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	driver, err := sqlite3.WithInstance(m.db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("could not create driver: %w", err)
	}

	src, err := iofs.New(migrationFiles, "sql")
	if err != nil {
		return fmt.Errorf("could not create fs: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			m.logger.Errorf("could not close fs: %s", err)
		}
	}()

	inst, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	return f(inst)
}
