package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/tasks/internal/app/target"
	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// TaskStore is the task store used by the remove service.
type TaskStore interface {
	View(ctx context.Context, opts model.ViewOptions) taskstore.View
	Get(ctx context.Context, id string) (model.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ServiceConfig is the configuration for the remove service.
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

// Service removes tasks.
type Service struct {
	store  TaskStore
	logger log.Logger
}

// NewService creates a new remove service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the remove request parameters.
type Request struct {
	// Target is the view index or ID of the task.
	Target string
	// ViewOptions are the options of the view the target index refers to.
	ViewOptions model.ViewOptions
}

// Run removes the targeted task. A target that doesn't reference any task is a no-op
// and returns a nil task.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	id, ok := target.Resolve(s.store.View(ctx, req.ViewOptions), req.Target)
	if !ok {
		s.logger.Debugf("nothing to remove for target: %s", req.Target)
		return nil, nil
	}

	task, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Debugf("nothing to remove for target: %s", req.Target)
			return nil, nil
		}
		return nil, fmt.Errorf("could not get task: %w", err)
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not delete task: %w", err)
	}
	if !deleted {
		return nil, nil
	}

	s.logger.Infof("removed task: %s (ID: %s)", task.Title, task.ID)
	return &task, nil
}
