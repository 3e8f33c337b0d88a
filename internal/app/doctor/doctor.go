package doctor

import (
	"context"
	"fmt"

	"github.com/slok/tasks/internal/conventions"
	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// Database is the inspected task database.
type Database interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Keys(ctx context.Context) ([]string, error)
	SchemaVersion(ctx context.Context) (version uint, ok bool, err error)
}

// ServiceConfig is the configuration for the doctor service.
type ServiceConfig struct {
	Database Database
	Logger   log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Database == nil {
		return fmt.Errorf("database is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service runs health checks on the task database.
type Service struct {
	db     Database
	logger log.Logger
}

// NewService creates a new doctor service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		db:     cfg.Database,
		logger: cfg.Logger,
	}, nil
}

// Run executes all the checks, failed checks are reported on the results, not as errors.
func (s *Service) Run(ctx context.Context) []model.CheckResult {
	return []model.CheckResult{
		s.checkSchema(ctx),
		s.checkKeys(ctx),
		s.checkTasks(ctx),
		s.checkTheme(ctx),
	}
}

func (s *Service) checkSchema(ctx context.Context) model.CheckResult {
	const id = "db_schema"

	v, ok, err := s.db.SchemaVersion(ctx)
	switch {
	case err != nil:
		return model.CheckResult{ID: id, Status: model.CheckStatusError, Message: err.Error()}
	case !ok:
		return model.CheckResult{ID: id, Status: model.CheckStatusError, Message: "No schema migrations applied"}
	}

	return model.CheckResult{ID: id, Status: model.CheckStatusOK, Message: fmt.Sprintf("Schema at version %d", v)}
}

func (s *Service) checkKeys(ctx context.Context) model.CheckResult {
	const id = "db_keys"

	keys, err := s.db.Keys(ctx)
	if err != nil {
		return model.CheckResult{ID: id, Status: model.CheckStatusError, Message: err.Error()}
	}

	return model.CheckResult{ID: id, Status: model.CheckStatusOK, Message: fmt.Sprintf("%d keys stored", len(keys))}
}

func (s *Service) checkTasks(ctx context.Context) model.CheckResult {
	const id = "tasks_data"

	data, ok, err := s.db.Get(ctx, conventions.TasksKey)
	if err != nil {
		return model.CheckResult{ID: id, Status: model.CheckStatusError, Message: err.Error()}
	}
	if !ok {
		return model.CheckResult{ID: id, Status: model.CheckStatusWarning, Message: "No tasks stored yet"}
	}

	tasks, err := taskstore.DecodeTasks(data)
	if err != nil {
		s.logger.Debugf("invalid tasks data: %s", err)
		return model.CheckResult{ID: id, Status: model.CheckStatusError, Message: "Stored tasks are not valid, they will be ignored"}
	}

	invalid := 0
	for _, t := range tasks {
		if !t.State.Valid() {
			invalid++
			continue
		}
		if t.Deadline != nil {
			if _, ok := t.DeadlineDate(); !ok {
				invalid++
			}
		}
	}
	if invalid > 0 {
		return model.CheckResult{ID: id, Status: model.CheckStatusWarning, Message: fmt.Sprintf("%d of %d tasks have an unknown state or deadline", invalid, len(tasks))}
	}

	return model.CheckResult{ID: id, Status: model.CheckStatusOK, Message: fmt.Sprintf("%d tasks stored", len(tasks))}
}

func (s *Service) checkTheme(ctx context.Context) model.CheckResult {
	const id = "theme"

	v, ok, err := s.db.Get(ctx, conventions.ThemeKey)
	switch {
	case err != nil:
		return model.CheckResult{ID: id, Status: model.CheckStatusError, Message: err.Error()}
	case !ok:
		return model.CheckResult{ID: id, Status: model.CheckStatusOK, Message: fmt.Sprintf("Using default %s theme", model.ThemeLight)}
	case !model.Theme(v).Valid():
		return model.CheckResult{ID: id, Status: model.CheckStatusWarning, Message: fmt.Sprintf("Unknown theme %q, using %s", v, model.ThemeLight)}
	}

	return model.CheckResult{ID: id, Status: model.CheckStatusOK, Message: fmt.Sprintf("Using %s theme", v)}
}
