package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasks/internal/app/create"
)

type AddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	draft  draftFlags
	format string
}

// NewAddCommand returns the add command.
func NewAddCommand(rootCmd *RootCommand, app *kingpin.Application) *AddCommand {
	c := &AddCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("add", "Add a new task.")
	c.draft.register(c.Cmd)
	c.Cmd.Flag("format", "Output format (table, json, cards).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON, formatCards)

	return c
}

func (c AddCommand) Name() string { return c.Cmd.FullCommand() }

func (c AddCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

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

	svc, err := create.NewService(create.ServiceConfig{
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, create.Request{Draft: draft})
	if err != nil {
		return fmt.Errorf("could not add task: %w", err)
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
