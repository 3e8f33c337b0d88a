package edit

import (
	"context"
	"fmt"

	"github.com/slok/tasks/internal/app/target"
	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// TaskStore is the task store used by the edit service.
type TaskStore interface {
	View(ctx context.Context, opts model.ViewOptions) taskstore.View
	Update(ctx context.Context, id string, d model.Draft) (model.Task, error)
}

// ServiceConfig is the configuration for the edit service.
type ServiceConfig struct {
	Store  TaskStore
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service replaces existing tasks.
type Service struct {
	store  TaskStore
	logger log.Logger
}

// NewService creates a new edit service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the edit request parameters.
type Request struct {
	// Target is the view index or ID of the task.
	Target string
	// ViewOptions are the options of the view the target index refers to.
	ViewOptions model.ViewOptions
	Draft       model.Draft
}

// Run replaces all the fields of the targeted task with the draft.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	if err := req.Draft.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	id, ok := target.Resolve(s.store.View(ctx, req.ViewOptions), req.Target)
	if !ok {
		return nil, fmt.Errorf("task not found: %s: %w", req.Target, model.ErrNotFound)
	}

	task, err := s.store.Update(ctx, id, req.Draft)
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}

	s.logger.Infof("updated task: %s (ID: %s)", task.Title, task.ID)
	return &task, nil
}
