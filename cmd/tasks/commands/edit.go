package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasks/internal/app/edit"
)

type EditCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	target string
	view   viewFlags
	draft  draftFlags
	format string
}

// NewEditCommand returns the edit command.
func NewEditCommand(rootCmd *RootCommand, app *kingpin.Application) *EditCommand {
	c := &EditCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("edit", "Replace all the fields of a task.")
	c.Cmd.Arg("target", "Task index (as listed with the same --filter and --sort) or ID.").Required().StringVar(&c.target)
	c.view.register(c.Cmd)
	c.draft.register(c.Cmd)
	c.Cmd.Flag("format", "Output format (table, json, cards).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON, formatCards)

	return c
}

func (c EditCommand) Name() string { return c.Cmd.FullCommand() }

func (c EditCommand) Run(ctx context.Context) error {
	opts, err := c.view.options()
	if err != nil {
		return err
	}

	draft, err := c.draft.draft()
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

	svc, err := edit.NewService(edit.ServiceConfig{
		Store:  store,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, edit.Request{
		Target:      c.target,
		ViewOptions: opts,
		Draft:       draft,
	})
	if err != nil {
		return fmt.Errorf("could not edit task: %w", err)
	}

	p, err := c.rootCmd.newPrinter(ctx, kv, c.format)
	if err != nil {
		return err
	}

	if err := p.PrintTask(*task); err != nil {
		return fmt.Errorf("could not print task: %w", err)
	}

	return nil
}
