package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasks/internal/app/taskexport"
	taskio "github.com/slok/tasks/internal/storage/io"
)

type ExportCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	out    string
	format string
}

// NewExportCommand returns the export command.
func NewExportCommand(rootCmd *RootCommand, app *kingpin.Application) *ExportCommand {
	c := &ExportCommand{rootCmd: rootCmd}

	formats := make([]string, 0, len(taskio.ExportFormats))
	for _, f := range taskio.ExportFormats {
		formats = append(formats, string(f))
	}

	c.Cmd = app.Command("export", "Export all the tasks to a file.")
	c.Cmd.Flag("out", "Output file, stdout when missing.").Short('o').StringVar(&c.out)
	c.Cmd.Flag("format", "Export format (json, yaml, pdf).").Default(string(taskio.ExportFormatJSON)).EnumVar(&c.format, formats...)

	return c
}

func (c ExportCommand) Name() string { return c.Cmd.FullCommand() }

func (c ExportCommand) Run(ctx context.Context) (err error) {
	kv, err := c.rootCmd.openDB(ctx)
	if err != nil {
		return err
	}
	defer kv.Close()

	store, err := c.rootCmd.loadTaskStore(ctx, kv)
	if err != nil {
		return err
	}

	svc, err := taskexport.NewService(taskexport.ServiceConfig{
		Store:  store,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	out := c.rootCmd.Stdout
	if c.out != "" {
		if err := os.MkdirAll(filepath.Dir(c.out), 0755); err != nil {
			return fmt.Errorf("could not create output directory: %w", err)
		}
		f, err := os.Create(c.out)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("could not close output file: %w", cerr)
			}
		}()
		out = f
	}

	n, err := svc.Run(ctx, taskexport.Request{
		Out:    out,
		Format: taskio.ExportFormat(c.format),
	})
	if err != nil {
		return err
	}

	if c.out != "" {
		fmt.Fprintf(c.rootCmd.Stdout, "Exported %d tasks to %s\n", n, c.out)
	}

	return nil
}
