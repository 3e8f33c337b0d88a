package show

import (
	"context"
	"fmt"

	"github.com/slok/tasks/internal/app/target"
	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// TaskStore is the task store used by the show service.
type TaskStore interface {
	View(ctx context.Context, opts model.ViewOptions) taskstore.View
	Get(ctx context.Context, id string) (model.Task, error)
}

// ServiceConfig is the configuration for the show service.
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

// Service gets a single task.
type Service struct {
	store  TaskStore
	logger log.Logger
}

// NewService creates a new show service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the show request parameters.
type Request struct {
	// Target is the view index or ID of the task.
	Target      string
	ViewOptions model.ViewOptions
}

// Run returns the targeted task.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	id, ok := target.Resolve(s.store.View(ctx, req.ViewOptions), req.Target)
	if !ok {
		return nil, fmt.Errorf("task not found: %s: %w", req.Target, model.ErrNotFound)
	}

	task, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get task: %w", err)
	}

	return &task, nil
}
