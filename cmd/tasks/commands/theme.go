package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/printer"
)

const themeActionToggle = "toggle"

type ThemeCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	action string
}

// NewThemeCommand returns the theme command.
func NewThemeCommand(rootCmd *RootCommand, app *kingpin.Application) *ThemeCommand {
	c := &ThemeCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("theme", "Show or change the color theme.")
	c.Cmd.Arg("theme", "New theme (light, dark, toggle), shows the current one when missing.").
		EnumVar(&c.action, string(model.ThemeLight), string(model.ThemeDark), themeActionToggle)

	return c
}

func (c ThemeCommand) Name() string { return c.Cmd.FullCommand() }

func (c ThemeCommand) Run(ctx context.Context) error {
	kv, err := c.rootCmd.openDB(ctx)
	if err != nil {
		return err
	}
	defer kv.Close()

	ts, err := c.rootCmd.themeStore(kv)
	if err != nil {
		return err
	}

	var theme model.Theme
	switch c.action {
	case "":
		theme, err = ts.Get(ctx)
	case themeActionToggle:
		theme, err = ts.Toggle(ctx)
	default:
		theme = model.Theme(c.action)
		err = ts.Set(ctx, theme)
	}
	if err != nil {
		return fmt.Errorf("could not manage theme: %w", err)
	}

	return printer.NewTablePrinter(c.rootCmd.Stdout).PrintMessage(string(theme))
}
