package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/slok/tasks/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		c.Binary = "tasks"
	}

	// go test changes the CWD to the test package directory, relative paths would
	// not point to the built binary.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("TASKS_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("tasks binary not found at %q: %w", c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "TASKS_INTEGRATION"
		envBinary     = "TASKS_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary: os.Getenv(envBinary),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// Run executes the tasks binary against the given database.
func Run(ctx context.Context, config Config, dbPath string, args ...string) (stdout, stderr []byte, err error) {
	env := []string{
		"TASKS_DB_PATH=" + dbPath,
		// Don't load a developer .env file from the test directory.
		"TASKS_ENV_FILE=" + filepath.Join(filepath.Dir(dbPath), "missing.env"),
	}

	return testutils.RunTasksArgs(ctx, env, config.Binary, args, true)
}

// RunJSON executes the tasks binary with JSON output and decodes it into out.
func RunJSON(ctx context.Context, config Config, dbPath string, out any, args ...string) error {
	args = append(args, "--format", "json")
	stdout, stderr, err := Run(ctx, config, dbPath, args...)
	if err != nil {
		return fmt.Errorf("command failed: %w: %s", err, stderr)
	}

	if err := json.Unmarshal(stdout, out); err != nil {
		return fmt.Errorf("invalid JSON output %q: %w", stdout, err)
	}

	return nil
}
