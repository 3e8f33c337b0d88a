package printer

import (
	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

// Printer knows how to print task information in different formats.
type Printer interface {
	PrintTasks(view taskstore.View) error
	PrintTask(task model.Task) error
	PrintMessage(msg string) error
}

const (
	noTasksMsg   = "You have no tasks"
	noSummaryMsg = "No summary provided"
)
