package lib

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"k8s.io/client-go/util/homedir"

	"github.com/slok/tasks/internal/app/create"
	"github.com/slok/tasks/internal/app/doctor"
	"github.com/slok/tasks/internal/app/taskexport"
	"github.com/slok/tasks/internal/app/taskimport"
	"github.com/slok/tasks/internal/conventions"
	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/preference"
	"github.com/slok/tasks/internal/storage"
	taskio "github.com/slok/tasks/internal/storage/io"
	"github.com/slok/tasks/internal/storage/memory"
	"github.com/slok/tasks/internal/storage/sqlite"
	"github.com/slok/tasks/internal/taskstore"
)

// Config configures a [Client].
type Config struct {
	// DBPath is the path to the SQLite database file.
	// Default: ~/.tasks/tasks.db (same as the CLI).
	DBPath string
	// DataDir is the tasks data directory, used when DBPath is not set.
	// Default: ~/.tasks.
	DataDir string
	// Logger for SDK operations. Default: [log.Noop] (silent).
	Logger log.Logger
	// Ephemeral keeps the tasks in memory only, nothing is read from or written to disk.
	Ephemeral bool
}

func (c *Config) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}

	if c.DataDir == "" {
		c.DataDir = filepath.Join(homedir.HomeDir(), conventions.DefaultDataDir)
	}

	if c.DBPath == "" {
		c.DBPath = conventions.DBPath(c.DataDir)
	}

	return nil
}

// Client is the main entry point for the tasks SDK.
//
// It is safe for concurrent use from multiple goroutines.
type Client struct {
	kv     storage.KV
	db     *sqlite.KV
	store  *taskstore.Store
	themes *preference.ThemeStore
	create *create.Service
	logger log.Logger
}

// New creates a new tasks client and loads the persisted task list.
//
// Persisted data that can't be parsed is ignored and the client starts with an empty
// list, the data is only overwritten on the first change.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Client{logger: cfg.Logger}
	if cfg.Ephemeral {
		kv, err := memory.NewKV(memory.KVConfig{Logger: cfg.Logger})
		if err != nil {
			return nil, fmt.Errorf("could not create memory storage: %w", err)
		}
		c.kv = kv
	} else {
		db, err := sqlite.NewKV(ctx, sqlite.KVConfig{DBPath: cfg.DBPath, Logger: cfg.Logger})
		if err != nil {
			return nil, fmt.Errorf("could not open database: %w", err)
		}
		c.kv = db
		c.db = db
	}

	store, err := taskstore.NewStore(taskstore.StoreConfig{KV: c.kv, Logger: cfg.Logger})
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("could not create task store: %w", err)
	}

	res, err := store.Load(ctx)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}
	if res.Status == taskstore.LoadStatusParseFailure {
		cfg.Logger.Warningf("Ignoring persisted tasks: %s", res.Err)
	}
	c.store = store

	themes, err := preference.NewThemeStore(preference.ThemeStoreConfig{KV: c.kv, Logger: cfg.Logger})
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("could not create theme store: %w", err)
	}
	c.themes = themes

	createSvc, err := create.NewService(create.ServiceConfig{Store: store, Logger: cfg.Logger})
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("could not create service: %w", err)
	}
	c.create = createSvc

	return c, nil
}

// Close releases the client resources.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// CreateTask appends a new task to the list.
func (c *Client) CreateTask(ctx context.Context, d TaskDraft) (*Task, error) {
	t, err := c.create.Run(ctx, create.Request{Draft: toInternalDraft(d)})
	if err != nil {
		return nil, mapError(err)
	}

	task := fromInternalTask(*t)
	return &task, nil
}

// UpdateTask replaces all the fields of a task with the draft.
func (c *Client) UpdateTask(ctx context.Context, id string, d TaskDraft) (*Task, error) {
	draft := toInternalDraft(d)
	if err := draft.Validate(); err != nil {
		return nil, mapError(fmt.Errorf("invalid task: %w", err))
	}

	t, err := c.store.Update(ctx, id, draft)
	if err != nil {
		return nil, mapError(err)
	}

	task := fromInternalTask(t)
	return &task, nil
}

// DeleteTask removes a task from the list. Returns false if the task did not exist.
func (c *Client) DeleteTask(ctx context.Context, id string) (bool, error) {
	deleted, err := c.store.Delete(ctx, id)
	if err != nil {
		return false, mapError(err)
	}

	return deleted, nil
}

// GetTask returns a task by its ID.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	t, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	task := fromInternalTask(t)
	return &task, nil
}

// ListTasks returns the tasks filtered and sorted with the options, nil options list
// all the tasks in creation order.
func (c *Client) ListTasks(ctx context.Context, opts *ListTasksOpts) ([]Task, error) {
	vo := toInternalViewOptions(opts)
	if vo.FilterState != "" && !vo.FilterState.Valid() {
		return nil, mapError(fmt.Errorf("unknown state %q: %w", vo.FilterState, model.ErrNotValid))
	}

	return fromInternalTaskList(c.store.View(ctx, vo).Tasks()), nil
}

// GetTheme returns the card color theme.
func (c *Client) GetTheme(ctx context.Context) (Theme, error) {
	t, err := c.themes.Get(ctx)
	if err != nil {
		return "", mapError(err)
	}
	return Theme(t), nil
}

// SetTheme sets the card color theme.
func (c *Client) SetTheme(ctx context.Context, theme Theme) error {
	return mapError(c.themes.Set(ctx, model.Theme(theme)))
}

// ToggleTheme switches between light and dark themes, returns the new theme.
func (c *Client) ToggleTheme(ctx context.Context) (Theme, error) {
	t, err := c.themes.Toggle(ctx)
	if err != nil {
		return "", mapError(err)
	}
	return Theme(t), nil
}

// ImportTasks loads the tasks of a JSON or YAML file. When replace is true the current
// list is dropped, otherwise the tasks are appended. Returns the imported tasks.
func (c *Client) ImportTasks(ctx context.Context, path string, replace bool) ([]Task, error) {
	svc, err := taskimport.NewService(taskimport.ServiceConfig{
		Store:           c.store,
		DraftRepository: taskio.NewTaskFileRepository(os.DirFS(filepath.Dir(path))),
		Logger:          c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	ts, err := svc.Run(ctx, taskimport.Request{Path: filepath.Base(path), Replace: replace})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalTaskList(ts), nil
}

// ExportTasks writes all the tasks to w in the given format. Returns the number of
// exported tasks.
func (c *Client) ExportTasks(ctx context.Context, w io.Writer, format ExportFormat) (int, error) {
	svc, err := taskexport.NewService(taskexport.ServiceConfig{Store: c.store, Logger: c.logger})
	if err != nil {
		return 0, fmt.Errorf("could not create service: %w", err)
	}

	n, err := svc.Run(ctx, taskexport.Request{Out: w, Format: taskio.ExportFormat(format)})
	if err != nil {
		return 0, mapError(err)
	}

	return n, nil
}

// Doctor runs the database health checks. Ephemeral clients have nothing to check
// and return no results.
func (c *Client) Doctor(ctx context.Context) ([]CheckResult, error) {
	if c.db == nil {
		return nil, nil
	}

	svc, err := doctor.NewService(doctor.ServiceConfig{Database: c.db, Logger: c.logger})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	return fromInternalCheckResults(svc.Run(ctx)), nil
}
