package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasks/internal/app/remove"
	"github.com/slok/tasks/internal/printer"
)

type RemoveCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	target string
	view   viewFlags
}

// NewRemoveCommand returns the rm command.
func NewRemoveCommand(rootCmd *RootCommand, app *kingpin.Application) *RemoveCommand {
	c := &RemoveCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("rm", "Remove a task.")
	c.Cmd.Arg("target", "Task index (as listed with the same --filter and --sort) or ID.").Required().StringVar(&c.target)
	c.view.register(c.Cmd)

	return c
}

func (c RemoveCommand) Name() string { return c.Cmd.FullCommand() }

func (c RemoveCommand) Run(ctx context.Context) error {
	opts, err := c.view.options()
	if err != nil {
		return err
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

	svc, err := remove.NewService(remove.ServiceConfig{
		Store:  store,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, remove.Request{
		Target:      c.target,
		ViewOptions: opts,
	})
	if err != nil {
		return fmt.Errorf("could not remove task: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if task == nil {
		return p.PrintMessage(fmt.Sprintf("No task matches %q, nothing removed", c.target))
	}

	return p.PrintMessage(fmt.Sprintf("Removed task %q (%s)", task.Title, task.ID))
}
