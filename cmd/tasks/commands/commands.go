package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/tasks/internal/conventions"
	"github.com/slok/tasks/internal/log"
	"github.com/slok/tasks/internal/metrics"
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/preference"
	"github.com/slok/tasks/internal/printer"
	"github.com/slok/tasks/internal/storage/sqlite"
	"github.com/slok/tasks/internal/taskstore"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCards = "cards"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug           bool
	NoLog           bool
	NoColor         bool
	LoggerType      string
	LogFile         string
	DBPath          string
	MetricsTextfile string

	// Global instances.
	Stdin           io.Reader
	Stdout          io.Writer
	Stderr          io.Writer
	Logger          log.Logger
	MetricsRecorder metrics.Recorder
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("log-file", "Write logs to a rotated file instead of stderr.").StringVar(&c.LogFile)

	defaultDBPath := conventions.DBPath(filepath.Join(homedir.HomeDir(), conventions.DefaultDataDir))
	app.Flag("db-path", "Path to the SQLite database file.").Default(defaultDBPath).StringVar(&c.DBPath)
	app.Flag("metrics-textfile", "Write Prometheus metrics to this file on exit (node exporter textfile format).").StringVar(&c.MetricsTextfile)

	return c
}

// openDB opens the task database, callers must close it.
func (r *RootCommand) openDB(ctx context.Context) (*sqlite.KV, error) {
	kv, err := sqlite.NewKV(ctx, sqlite.KVConfig{
		DBPath: r.DBPath,
		Logger: r.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open task database: %w", err)
	}

	return kv, nil
}

// loadTaskStore creates the task store and restores the persisted collection. Invalid
// persisted data is reported and the store starts empty.
func (r *RootCommand) loadTaskStore(ctx context.Context, kv *sqlite.KV) (*taskstore.Store, error) {
	store, err := taskstore.NewStore(taskstore.StoreConfig{
		KV:              kv,
		Logger:          r.Logger,
		MetricsRecorder: r.MetricsRecorder,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create task store: %w", err)
	}

	res, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}
	if res.Status == taskstore.LoadStatusParseFailure {
		r.Logger.Warningf("Stored tasks could not be parsed, starting with an empty list: %s", res.Err)
	}

	return store, nil
}

func (r *RootCommand) themeStore(kv *sqlite.KV) (*preference.ThemeStore, error) {
	ts, err := preference.NewThemeStore(preference.ThemeStoreConfig{
		KV:     kv,
		Logger: r.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create theme store: %w", err)
	}

	return ts, nil
}

// newPrinter returns the printer for an output format, cards are rendered with the
// stored theme.
func (r *RootCommand) newPrinter(ctx context.Context, kv *sqlite.KV, format string) (printer.Printer, error) {
	switch format {
	case formatJSON:
		return printer.NewJSONPrinter(r.Stdout), nil
	case formatCards:
		ts, err := r.themeStore(kv)
		if err != nil {
			return nil, err
		}
		theme, err := ts.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not get theme: %w", err)
		}
		return printer.NewCardsPrinter(r.Stdout, theme), nil
	default:
		return printer.NewTablePrinter(r.Stdout), nil
	}
}

// viewFlags are the flags that select the view task indexes refer to.
type viewFlags struct {
	filter string
	sort   string
}

func (v *viewFlags) register(cmd *kingpin.CmdClause) {
	cmd.Flag("filter", "Only tasks in this state (not-done, doing, done).").StringVar(&v.filter)
	cmd.Flag("sort", "Sort key (not-done, doing, done, deadline).").StringVar(&v.sort)
}

func (v viewFlags) options() (model.ViewOptions, error) {
	opts := model.ViewOptions{}
	if v.filter != "" {
		state, err := parseState(v.filter)
		if err != nil {
			return opts, fmt.Errorf("invalid filter: %w", err)
		}
		opts.FilterState = state
	}

	if v.sort != "" {
		key, err := parseSortKey(v.sort)
		if err != nil {
			return opts, fmt.Errorf("invalid sort: %w", err)
		}
		opts.SortKey = key
	}

	return opts, nil
}

// draftFlags are the flags of the task fields.
type draftFlags struct {
	title    string
	summary  string
	state    string
	deadline string
}

func (d *draftFlags) register(cmd *kingpin.CmdClause) {
	cmd.Flag("title", "Task title.").Required().StringVar(&d.title)
	cmd.Flag("summary", "Task summary.").StringVar(&d.summary)
	cmd.Flag("state", "Task state (not-done, doing, done).").StringVar(&d.state)
	cmd.Flag("deadline", "Task deadline (YYYY-MM-DD).").StringVar(&d.deadline)
}

func (d draftFlags) draft() (model.Draft, error) {
	draft := model.Draft{
		Title:    strings.TrimSpace(d.title),
		Summary:  d.summary,
		Deadline: strings.TrimSpace(d.deadline),
	}

	if d.state != "" {
		state, err := parseState(d.state)
		if err != nil {
			return model.Draft{}, err
		}
		draft.State = state
	}

	return draft, nil
}

// normalizeName lowercases and removes separators so "Not done", "not-done" and
// "not_done" are the same name.
func normalizeName(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

func parseState(s string) (model.TaskState, error) {
	switch normalizeName(s) {
	case "notdone", "todo":
		return model.TaskStateNotDone, nil
	case "doing", "doingrightnow":
		return model.TaskStateDoing, nil
	case "done":
		return model.TaskStateDone, nil
	}

	return "", fmt.Errorf("unknown state %q: %w", s, model.ErrNotValid)
}

func parseSortKey(s string) (model.SortKey, error) {
	if normalizeName(s) == "deadline" {
		return model.SortKeyDeadline, nil
	}

	state, err := parseState(s)
	if err != nil {
		return "", fmt.Errorf("unknown sort key %q: %w", s, model.ErrNotValid)
	}

	return model.SortKey(state), nil
}
