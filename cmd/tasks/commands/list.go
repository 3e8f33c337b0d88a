package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasks/internal/app/list"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	view   viewFlags
	format string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List tasks.")
	c.view.register(c.Cmd)
	c.Cmd.Flag("format", "Output format (table, json, cards).").Default(formatTable).EnumVar(&c.format, formatTable, formatJSON, formatCards)

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
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

	svc, err := list.NewService(list.ServiceConfig{
		Store:  store,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	view, err := svc.Run(ctx, list.Request{ViewOptions: opts})
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	p, err := c.rootCmd.newPrinter(ctx, kv, c.format)
	if err != nil {
		return err
	}

	if err := p.PrintTasks(view); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
