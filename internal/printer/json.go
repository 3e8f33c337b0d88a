package printer

import (
	"encoding/json"
	"io"

	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// JSONPrinter prints task information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// listItem represents a task in the list output.
type listItem struct {
	Index int `json:"index"`
	taskOutput
}

// taskOutput represents the full task output.
type taskOutput struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Summary  string  `json:"summary"`
	State    string  `json:"state"`
	Deadline *string `json:"deadline"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

func newTaskOutput(t model.Task) taskOutput {
	return taskOutput{
		ID:       t.ID,
		Title:    t.Title,
		Summary:  t.Summary,
		State:    string(t.State),
		Deadline: t.Deadline,
	}
}

// PrintTasks prints the tasks of a view in JSON format.
func (j *JSONPrinter) PrintTasks(view taskstore.View) error {
	items := make([]listItem, 0, view.Len())
	for i, t := range view.All() {
		items = append(items, listItem{Index: i, taskOutput: newTaskOutput(t)})
	}

	return j.encode(items)
}

// PrintTask prints a task in JSON format.
func (j *JSONPrinter) PrintTask(task model.Task) error {
	return j.encode(newTaskOutput(task))
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
