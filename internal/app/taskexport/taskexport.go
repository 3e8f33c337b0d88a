package taskexport

import (
	"context"
	"fmt"
	"io"

	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
	taskio "github.com/slok/tasks/internal/storage/io"
)

// TaskStore is the task store used by the export service.
type TaskStore interface {
	Tasks(ctx context.Context) []model.Task
}

// Exporter writes tasks in a format.
type Exporter interface {
	Export(w io.Writer, format taskio.ExportFormat, tasks []model.Task) error
}

// ServiceConfig is the configuration for the export service.
type ServiceConfig struct {
	Store    TaskStore
	Exporter Exporter
	Logger   log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Exporter == nil {
		c.Exporter = taskio.NewExporter()
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service exports the task collection.
type Service struct {
	store    TaskStore
	exporter Exporter
	logger   log.Logger
}

// NewService creates a new export service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:    cfg.Store,
		exporter: cfg.Exporter,
		logger:   cfg.Logger,
	}, nil
}

// Request represents the export request parameters.
type Request struct {
	Out    io.Writer
	Format taskio.ExportFormat
}

// Run writes the whole collection, in order, to the request output. Returns the number
// of exported tasks.
func (s *Service) Run(ctx context.Context, req Request) (int, error) {
	if req.Out == nil {
		return 0, fmt.Errorf("output is required: %w", model.ErrNotValid)
	}

	tasks := s.store.Tasks(ctx)
	if err := s.exporter.Export(req.Out, req.Format, tasks); err != nil {
		return 0, fmt.Errorf("could not export tasks: %w", err)
	}

	s.logger.Infof("exported %d tasks as %s", len(tasks), req.Format)
	return len(tasks), nil
}
