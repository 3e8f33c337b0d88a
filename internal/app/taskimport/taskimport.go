package taskimport

import (
	"context"
	"fmt"

	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
)

// TaskStore is the task store used by the import service.
type TaskStore interface {
	Create(ctx context.Context, d model.Draft) (model.Task, error)
	Replace(ctx context.Context, ds []model.Draft) ([]model.Task, error)
}

// DraftRepository loads task drafts from files.
type DraftRepository interface {
	GetDrafts(ctx context.Context, path string) ([]model.Draft, error)
}

// ServiceConfig is the configuration for the import service.
type ServiceConfig struct {
	Store           TaskStore
	DraftRepository DraftRepository
	Logger          log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.DraftRepository == nil {
		return fmt.Errorf("draft repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service imports tasks from files.
type Service struct {
	store  TaskStore
	repo   DraftRepository
	logger log.Logger
}

// NewService creates a new import service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		repo:   cfg.DraftRepository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the import request parameters.
type Request struct {
	Path string
	// Replace drops the current collection instead of appending to it.
	Replace bool
}

// Run loads the file tasks into the collection, returns the imported tasks.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Task, error) {
	drafts, err := s.repo.GetDrafts(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks file: %w", err)
	}

	if req.Replace {
		tasks, err := s.store.Replace(ctx, drafts)
		if err != nil {
			return nil, fmt.Errorf("could not replace tasks: %w", err)
		}
		s.logger.Infof("replaced collection with %d tasks from %s", len(tasks), req.Path)
		return tasks, nil
	}

	tasks := make([]model.Task, 0, len(drafts))
	for _, d := range drafts {
		t, err := s.store.Create(ctx, d)
		if err != nil {
			return tasks, fmt.Errorf("could not create task: %w", err)
		}
		tasks = append(tasks, t)
	}

	s.logger.Infof("imported %d tasks from %s", len(tasks), req.Path)
	return tasks, nil
}
