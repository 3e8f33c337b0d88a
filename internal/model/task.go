package model

import (
	"fmt"
	"time"
)

// DeadlineLayout is the calendar date layout used for task deadlines.
const DeadlineLayout = "2006-01-02"

// TaskState represents the progress state of a task.
type TaskState string

const (
	// TaskStateNotDone is the default state of a new task.
	TaskStateNotDone TaskState = "Not done"
	// TaskStateDoing indicates the task is being worked on.
	TaskStateDoing TaskState = "Doing right now"
	// TaskStateDone indicates the task is finished.
	TaskStateDone TaskState = "Done"
)

// TaskStates are all the known task states.
var TaskStates = []TaskState{TaskStateNotDone, TaskStateDoing, TaskStateDone}

// Valid returns true if the state is one of the known task states.
func (s TaskState) Valid() bool {
	for _, st := range TaskStates {
		if s == st {
			return true
		}
	}
	return false
}

// Task represents a single task of the collection.
type Task struct {
	// ID is an opaque identifier assigned when the task enters the collection.
	// It is not part of the task serialized data.
	ID       string
	Title    string
	Summary  string
	State    TaskState
	Deadline *string
}

// DeadlineDate returns the parsed deadline, false when the task has no deadline or
// it can't be parsed.
func (t Task) DeadlineDate() (time.Time, bool) {
	if t.Deadline == nil {
		return time.Time{}, false
	}

	d, err := time.Parse(DeadlineLayout, *t.Deadline)
	if err != nil {
		return time.Time{}, false
	}

	return d, true
}

// Draft is the user input used to create or replace a task.
type Draft struct {
	Title   string
	Summary string
	// State is optional, empty means TaskStateNotDone.
	State TaskState
	// Deadline is optional, empty means no deadline.
	Deadline string
}

// Validate validates the draft. Stores accept unvalidated drafts, callers that take
// user input are expected to validate them first.
func (d Draft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("title is required: %w", ErrNotValid)
	}

	if d.State != "" && !d.State.Valid() {
		return fmt.Errorf("unknown state %q: %w", d.State, ErrNotValid)
	}

	if d.Deadline != "" {
		if _, err := time.Parse(DeadlineLayout, d.Deadline); err != nil {
			return fmt.Errorf("deadline %q must use YYYY-MM-DD format: %w", d.Deadline, ErrNotValid)
		}
	}

	return nil
}

// ToTask builds a task from the draft applying the defaults, the ID is not set.
func (d Draft) ToTask() Task {
	t := Task{
		Title:   d.Title,
		Summary: d.Summary,
		State:   d.State,
	}

	if t.State == "" {
		t.State = TaskStateNotDone
	}

	if d.Deadline != "" {
		deadline := d.Deadline
		t.Deadline = &deadline
	}

	return t
}

// DraftFromTask returns the draft that would build the same task.
func DraftFromTask(t Task) Draft {
	d := Draft{
		Title:   t.Title,
		Summary: t.Summary,
		State:   t.State,
	}
	if t.Deadline != nil {
		d.Deadline = *t.Deadline
	}

	return d
}

// SortKey selects how a task view is ordered.
type SortKey string

const (
	// SortKeyNone keeps the collection order.
	SortKeyNone SortKey = ""
	// SortKeyDone moves done tasks first.
	SortKeyDone SortKey = SortKey(TaskStateDone)
	// SortKeyDoing moves in progress tasks first.
	SortKeyDoing SortKey = SortKey(TaskStateDoing)
	// SortKeyNotDone moves not done tasks first.
	SortKeyNotDone SortKey = SortKey(TaskStateNotDone)
	// SortKeyDeadline orders by ascending deadline, tasks without deadline last.
	SortKeyDeadline SortKey = "Deadline"
)

// ViewOptions are the options used to derive a view of the task collection.
type ViewOptions struct {
	// FilterState only keeps tasks in this state, empty keeps all of them.
	FilterState TaskState
	// SortKey is the ordering applied after filtering.
	SortKey SortKey
}
