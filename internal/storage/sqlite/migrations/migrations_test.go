package migrations_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/storage/sqlite/migrations"
)

func TestMigratorUpDown(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := migrations.NewMigrator(db, log.Noop)
	require.NoError(t, err)

	_, ok, err := m.Version(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Up(ctx))
	require.NoError(t, m.Up(ctx)) // No change is not an error.

	v, ok, err := m.Version(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(1), v)

	_, err = db.ExecContext(ctx, `INSERT INTO kv (key, value, updated_at) VALUES ('a', 'b', 0)`)
	require.NoError(t, err)

	require.NoError(t, m.Down(ctx))
	_, err = db.ExecContext(ctx, `SELECT key FROM kv`)
	assert.Error(t, err)
}

func TestNewMigratorRequiresDB(t *testing.T) {
	_, err := migrations.NewMigrator(nil, nil)
	assert.Error(t, err)
}
