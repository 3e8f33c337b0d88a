package lib

import (
	"github.com/slok/tasks/internal/model"
)

// TaskState represents the progress state of a task.
type TaskState string

const (
	// TaskStateNotDone is the state of new tasks.
	TaskStateNotDone TaskState = TaskState(model.TaskStateNotDone)
	// TaskStateDoing indicates the task is being worked on.
	TaskStateDoing TaskState = TaskState(model.TaskStateDoing)
	// TaskStateDone indicates the task is finished.
	TaskStateDone TaskState = TaskState(model.TaskStateDone)
)

// Task represents a task returned by the SDK.
//
// This is a copy of the task at the time of the API call.
type Task struct {
	// ID is the unique identifier (ULID) assigned when the task was created.
	ID      string
	Title   string
	Summary string
	State   TaskState
	// Deadline is the task deadline (YYYY-MM-DD). Nil if the task has no deadline.
	Deadline *string
}

// TaskDraft is the content of a task to create or update. Updates replace all the
// task fields.
type TaskDraft struct {
	// Title is required.
	Title   string
	Summary string
	// State is optional, defaults to [TaskStateNotDone].
	State TaskState
	// Deadline is optional, in YYYY-MM-DD format.
	Deadline string
}

// SortBy is the order of the listed tasks.
type SortBy string

const (
	// SortByNone keeps the creation order.
	SortByNone SortBy = ""
	// SortByDone lists done tasks first.
	SortByDone SortBy = SortBy(model.SortKeyDone)
	// SortByDoing lists the tasks being worked on first.
	SortByDoing SortBy = SortBy(model.SortKeyDoing)
	// SortByNotDone lists the not done tasks first.
	SortByNotDone SortBy = SortBy(model.SortKeyNotDone)
	// SortByDeadline lists tasks by ascending deadline, tasks without deadline last.
	SortByDeadline SortBy = SortBy(model.SortKeyDeadline)
)

// ListTasksOpts are the options for [Client.ListTasks].
type ListTasksOpts struct {
	// State only lists tasks in this state when set.
	State *TaskState
	// SortBy is the order of the tasks.
	SortBy SortBy
}

// Theme is the color theme of the task cards.
type Theme string

const (
	ThemeLight Theme = Theme(model.ThemeLight)
	ThemeDark  Theme = Theme(model.ThemeDark)
)

// ExportFormat is the format of exported tasks.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
	ExportFormatPDF  ExportFormat = "pdf"
)

// CheckStatus represents the outcome of a health check.
type CheckStatus string

const (
	// CheckStatusOK indicates the check passed.
	CheckStatusOK CheckStatus = "ok"
	// CheckStatusWarning indicates the check passed with a warning.
	CheckStatusWarning CheckStatus = "warning"
	// CheckStatusError indicates the check failed.
	CheckStatusError CheckStatus = "error"
)

// CheckResult is the result of a single health check.
type CheckResult struct {
	ID      string
	Message string
	Status  CheckStatus
}

func toInternalDraft(d TaskDraft) model.Draft {
	return model.Draft{
		Title:    d.Title,
		Summary:  d.Summary,
		State:    model.TaskState(d.State),
		Deadline: d.Deadline,
	}
}

func toInternalViewOptions(opts *ListTasksOpts) model.ViewOptions {
	if opts == nil {
		return model.ViewOptions{}
	}

	vo := model.ViewOptions{SortKey: model.SortKey(opts.SortBy)}
	if opts.State != nil {
		vo.FilterState = model.TaskState(*opts.State)
	}
	return vo
}

func fromInternalTask(t model.Task) Task {
	task := Task{
		ID:      t.ID,
		Title:   t.Title,
		Summary: t.Summary,
		State:   TaskState(t.State),
	}
	if t.Deadline != nil {
		d := *t.Deadline
		task.Deadline = &d
	}
	return task
}

func fromInternalTaskList(ts []model.Task) []Task {
	result := make([]Task, len(ts))
	for i, t := range ts {
		result[i] = fromInternalTask(t)
	}
	return result
}

func fromInternalCheckResults(rs []model.CheckResult) []CheckResult {
	result := make([]CheckResult, len(rs))
	for i, r := range rs {
		result[i] = CheckResult{
			ID:      r.ID,
			Message: r.Message,
			Status:  CheckStatus(r.Status),
		}
	}
	return result
}
