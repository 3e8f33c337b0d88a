package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasks/internal/app/taskimport"
	taskio "github.com/slok/tasks/internal/storage/io"
)

type ImportCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	file    string
	replace bool
}

// NewImportCommand returns the import command.
func NewImportCommand(rootCmd *RootCommand, app *kingpin.Application) *ImportCommand {
	c := &ImportCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("import", "Import tasks from a JSON or YAML file.")
	c.Cmd.Flag("file", "Tasks file (.json, .yaml or .yml).").Short('f').Required().StringVar(&c.file)
	c.Cmd.Flag("replace", "Replace the current tasks instead of appending.").BoolVar(&c.replace)

	return c
}

func (c ImportCommand) Name() string { return c.Cmd.FullCommand() }

func (c ImportCommand) Run(ctx context.Context) error {
	path, err := filepath.Abs(c.file)
	if err != nil {
		return fmt.Errorf("could not resolve file path: %w", err)
	}

	kv, err := c.rootCmd.openDB(ctx)
	if err != nil {
		return err
	}
	defer kv.Close()

	store, err := c.rootCmd.loadTaskStore(ctx, kv)
	if err != nil {
		return err
	}

	svc, err := taskimport.NewService(taskimport.ServiceConfig{
		Store:           store,
		DraftRepository: taskio.NewTaskFileRepository(os.DirFS(filepath.Dir(path))),
		Logger:          c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	tasks, err := svc.Run(ctx, taskimport.Request{
		Path:    filepath.Base(path),
		Replace: c.replace,
	})
	if err != nil {
		return fmt.Errorf("could not import tasks: %w", err)
	}

	fmt.Fprintf(c.rootCmd.Stdout, "Imported %d tasks from %s\n", len(tasks), c.file)
	return nil
}
