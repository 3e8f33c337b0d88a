package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/storage/sqlite/migrations"
)

// KVConfig is the configuration for the SQLite KV.
type KVConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *KVConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// KV is a SQLite implementation of storage.KV.
type KV struct {
	db     *sql.DB
	logger log.Logger
}

// NewKV creates a new SQLite KV, the database is created and migrated if required.
func NewKV(ctx context.Context, cfg KVConfig) (*KV, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite KV initialized at %s", cfg.DBPath)

	return &KV{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (k *KV) Close() error { return k.db.Close() }

// Get retrieves the value of a key.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := k.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("could not query key %s: %w", key, err)
	}

	return value, true, nil
}

// Set stores the value of a key, replacing the previous one.
func (k *KV) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	_, err := k.db.ExecContext(ctx, query, key, value, time.Now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("could not store key %s: %w", key, err)
	}

	k.logger.Debugf("Stored key %s (%d bytes)", key, len(value))
	return nil
}

// Keys returns all the stored keys sorted.
func (k *KV) Keys(ctx context.Context) ([]string, error) {
	rows, err := k.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("could not query keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return keys, nil
}

// SchemaVersion returns the applied schema migration version.
func (k *KV) SchemaVersion(ctx context.Context) (version uint, ok bool, err error) {
	migrator, err := migrations.NewMigrator(k.db, k.logger)
	if err != nil {
		return 0, false, fmt.Errorf("could not create migrator: %w", err)
	}

	return migrator.Version(ctx)
}
