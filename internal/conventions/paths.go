package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default tasks data directory name (relative to home).
	DefaultDataDir = ".tasks"
	// DBFile is the SQLite database filename inside the data directory.
	DBFile = "tasks.db"
	// EnvFile is the default env file loaded before parsing flags.
	EnvFile = ".env"

	// Storage keys.

	// TasksKey is the storage key holding the whole serialized task collection.
	TasksKey = "tasks"
	// TaskIDsKey is the storage key holding the task IDs in collection order.
	TaskIDsKey = "tasks-ids"
	// ThemeKey is the storage key holding the color scheme preference.
	ThemeKey = "mantine-color-scheme"
)

// DBPath returns the database path for a data directory.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, DBFile)
}
