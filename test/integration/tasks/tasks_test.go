package tasks_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inttasks "github.com/slok/tasks/test/integration/tasks"
)

// listItem matches the JSON output of `tasks list --format json`.
type listItem struct {
	Index    int     `json:"index"`
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Summary  string  `json:"summary"`
	State    string  `json:"state"`
	Deadline *string `json:"deadline"`
}

func newTestDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test-tasks.db")
}

func listTitles(t *testing.T, config inttasks.Config, dbPath string, args ...string) []string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var items []listItem
	err := inttasks.RunJSON(ctx, config, dbPath, &items, append([]string{"list"}, args...)...)
	require.NoError(t, err)

	titles := []string{}
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	return titles
}

func TestTasksLifecycle(t *testing.T) {
	config := inttasks.NewConfig(t)
	dbPath := newTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Create.
	var created listItem
	err := inttasks.RunJSON(ctx, config, dbPath, &created, "add", "--title", "buy milk", "--deadline", "2024-06-01")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Not done", created.State)

	for _, title := range []string{"walk dog", "read book"} {
		_, stderr, err := inttasks.Run(ctx, config, dbPath, "add", "--title", title)
		require.NoError(t, err, string(stderr))
	}
	assert.Equal(t, []string{"buy milk", "walk dog", "read book"}, listTitles(t, config, dbPath))

	// Edit by index of a sorted view.
	_, stderr, err := inttasks.Run(ctx, config, dbPath, "edit", "2", "--sort", "deadline", "--title", "read book", "--state", "done")
	require.NoError(t, err, string(stderr))
	assert.Equal(t, []string{"read book"}, listTitles(t, config, dbPath, "--filter", "done"))

	// IDs survive between invocations.
	var shown listItem
	err = inttasks.RunJSON(ctx, config, dbPath, &shown, "show", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", shown.Title)

	// Remove by ID.
	_, stderr, err = inttasks.Run(ctx, config, dbPath, "rm", created.ID)
	require.NoError(t, err, string(stderr))
	assert.Equal(t, []string{"walk dog", "read book"}, listTitles(t, config, dbPath))

	// Unknown targets fail.
	_, _, err = inttasks.Run(ctx, config, dbPath, "show", created.ID)
	assert.Error(t, err)
}

func TestTasksInvalidInput(t *testing.T) {
	config := inttasks.NewConfig(t)
	dbPath := newTestDB(t)

	tests := map[string]struct {
		args []string
	}{
		"Missing title should fail.":       {args: []string{"add", "--summary", "s"}},
		"Invalid deadline should fail.":    {args: []string{"add", "--title", "t", "--deadline", "tomorrow"}},
		"Unknown state should fail.":       {args: []string{"add", "--title", "t", "--state", "blocked"}},
		"Unknown filter should fail.":      {args: []string{"list", "--filter", "blocked"}},
		"Out of range index should fail.":  {args: []string{"edit", "7", "--title", "t"}},
		"Unknown export format must fail.": {args: []string{"export", "--format", "csv"}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			_, _, err := inttasks.Run(ctx, config, dbPath, test.args...)
			assert.Error(t, err)
		})
	}
}

func TestTasksExportImport(t *testing.T) {
	config := inttasks.NewConfig(t)
	srcDB := newTestDB(t)
	dstDB := newTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, title := range []string{"t1", "t2"} {
		_, stderr, err := inttasks.Run(ctx, config, srcDB, "add", "--title", title)
		require.NoError(t, err, string(stderr))
	}

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "tasks."+format)
			_, stderr, err := inttasks.Run(ctx, config, srcDB, "export", "--format", format, "--out", file)
			require.NoError(t, err, string(stderr))

			_, stderr, err = inttasks.Run(ctx, config, dstDB, "import", "--file", file, "--replace")
			require.NoError(t, err, string(stderr))

			assert.Equal(t, []string{"t1", "t2"}, listTitles(t, config, dstDB))
		})
	}

	t.Run("pdf", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "tasks.pdf")
		_, stderr, err := inttasks.Run(ctx, config, srcDB, "export", "--format", "pdf", "--out", file)
		require.NoError(t, err, string(stderr))

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data[:4]))
	})
}

func TestTasksDoctor(t *testing.T) {
	config := inttasks.NewConfig(t)
	dbPath := newTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, stderr, err := inttasks.Run(ctx, config, dbPath, "add", "--title", "t1")
	require.NoError(t, err, string(stderr))

	stdout, stderr, err := inttasks.Run(ctx, config, dbPath, "doctor")
	require.NoError(t, err, string(stderr))
	assert.Contains(t, string(stdout), "1 tasks stored")
}
