package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasks/internal/app/doctor"
	"github.com/slok/tasks/internal/model"
)

type DoctorCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewDoctorCommand returns the doctor command.
func NewDoctorCommand(rootCmd *RootCommand, app *kingpin.Application) *DoctorCommand {
	c := &DoctorCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("doctor", "Run health checks on the task database.")

	return c
}

func (c DoctorCommand) Name() string { return c.Cmd.FullCommand() }

func (c DoctorCommand) Run(ctx context.Context) error {
	out := c.rootCmd.Stdout

	fmt.Fprintf(out, "Checking %s...\n", c.rootCmd.DBPath)

	kv, err := c.rootCmd.openDB(ctx)
	if err != nil {
		fmt.Fprintf(out, "  %s %-12s %s\n", getStatusIcon(model.CheckStatusError), "db_open", err)
		return fmt.Errorf("health checks failed with 1 error(s)")
	}
	defer kv.Close()

	svc, err := doctor.NewService(doctor.ServiceConfig{
		Database: kv,
		Logger:   c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	results := append([]model.CheckResult{{ID: "db_open", Status: model.CheckStatusOK, Message: "Database opened"}}, svc.Run(ctx)...)
	for _, r := range results {
		fmt.Fprintf(out, "  %s %-12s %s\n", getStatusIcon(r.Status), r.ID, r.Message)
	}

	totalErrors := model.CountStatus(results, model.CheckStatusError)
	totalWarnings := model.CountStatus(results, model.CheckStatusWarning)

	// Summary
	fmt.Fprintln(out)
	if totalErrors == 0 && totalWarnings == 0 {
		fmt.Fprintln(out, "All checks passed!")
	} else {
		var summary []string
		if totalErrors > 0 {
			summary = append(summary, fmt.Sprintf("%d error(s)", totalErrors))
		}
		if totalWarnings > 0 {
			summary = append(summary, fmt.Sprintf("%d warning(s)", totalWarnings))
		}
		fmt.Fprintln(out, strings.Join(summary, ", "))
	}

	if model.HasErrors(results) {
		return fmt.Errorf("health checks failed with %d error(s)", totalErrors)
	}

	return nil
}

func getStatusIcon(status model.CheckStatus) string {
	switch status {
	case model.CheckStatusOK:
		return "OK"
	case model.CheckStatusWarning:
		return "!!"
	case model.CheckStatusError:
		return "XX"
	default:
		return "??"
	}
}
