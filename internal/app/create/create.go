package create

import (
	"context"
	"fmt"

	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
)

// TaskStore is the task store used by the create service.
type TaskStore interface {
	Create(ctx context.Context, d model.Draft) (model.Task, error)
}

// ServiceConfig is the configuration for the create service.
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

// Service creates tasks.
type Service struct {
	store  TaskStore
	logger log.Logger
}

// NewService creates a new create service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the create request parameters.
type Request struct {
	Draft model.Draft
}

// Run validates the draft and appends a new task to the collection.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	if err := req.Draft.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	task, err := s.store.Create(ctx, req.Draft)
	if err != nil {
		return nil, fmt.Errorf("could not create task: %w", err)
	}

	s.logger.Infof("created task: %s (ID: %s)", task.Title, task.ID)
	return &task, nil
}
