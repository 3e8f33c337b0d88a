package list

import (
	"context"
	"fmt"

	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// TaskStore is the task store used by the list service.
type TaskStore interface {
	View(ctx context.Context, opts model.ViewOptions) taskstore.View
}

// ServiceConfig is the configuration for the list service.
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

// Service lists tasks with optional filtering and sorting.
type Service struct {
	store  TaskStore
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	ViewOptions model.ViewOptions
}

// Run returns the view of the collection for the requested options.
func (s *Service) Run(ctx context.Context, req Request) (taskstore.View, error) {
	opts := req.ViewOptions
	if opts.FilterState != "" && !opts.FilterState.Valid() {
		return taskstore.View{}, fmt.Errorf("invalid state filter %q: %w", opts.FilterState, model.ErrNotValid)
	}

	s.logger.Debugf("listing tasks with filter %q and sort %q", opts.FilterState, opts.SortKey)

	view := s.store.View(ctx, opts)
	s.logger.Debugf("found %d tasks", view.Len())

	return view, nil
}
