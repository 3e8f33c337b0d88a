package printer

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// TablePrinter prints task information in a table format.
type TablePrinter struct {
	writer io.Writer
	now    func() time.Time
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w, now: time.Now}
}

// PrintTasks prints the tasks of a view in a table format, the index column is the
// view index used to address tasks on other commands.
func (t *TablePrinter) PrintTasks(view taskstore.View) error {
	if view.Len() == 0 {
		return t.PrintMessage(noTasksMsg)
	}

	now := t.now()
	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "#\tID\tTITLE\tSTATE\tDEADLINE")
	for i, task := range view.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, task.ID, task.Title, task.State, FormatDeadline(task.Deadline, now))
	}

	return nil
}

// PrintTask prints the details of a task.
func (t *TablePrinter) PrintTask(task model.Task) error {
	summary := task.Summary
	if summary == "" {
		summary = noSummaryMsg
	}

	fmt.Fprintf(t.writer, "ID:        %s\n", task.ID)
	fmt.Fprintf(t.writer, "Title:     %s\n", task.Title)
	fmt.Fprintf(t.writer, "Summary:   %s\n", summary)
	fmt.Fprintf(t.writer, "State:     %s\n", task.State)
	fmt.Fprintf(t.writer, "Deadline:  %s\n", FormatDeadline(task.Deadline, t.now()))

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
